package pq

import "fmt"

// CheckInvariants verifies heap order, key uniqueness and index exactness.
// It is a white-box bridge for pq_test only.
func (q *Queue[K, E]) CheckInvariants() error {
	s := &q.h
	if len(s.index) != len(s.data) {
		return fmt.Errorf("index has %d keys, heap has %d slots", len(s.index), len(s.data))
	}
	for i, e := range s.data {
		k := s.key(e)
		if at, ok := s.index[k]; !ok || at != i {
			return fmt.Errorf("slot %d: index says %d (present=%v)", i, at, ok)
		}
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(s.data) && s.cmp(s.data[c], e) < 0 {
				return fmt.Errorf("slot %d: child %d has smaller priority", i, c)
			}
		}
	}

	return nil
}
