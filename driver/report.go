package driver

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Outcome is the result of one algorithm on one problem.
type Outcome struct {
	// Problem is the 1-based problem number.
	Problem int

	// Skipped is set when the runner did not run the search (see Problem.Solvable).
	Skipped bool

	Found    bool
	Expanded int64
	Length   int
	Cost     int
	Duration time.Duration

	// Path is the rendered solution, filled only with Config.PrintPaths.
	Path string

	err error
}

func (o Outcome) label() string {
	switch {
	case o.Skipped:
		return OutcomeSkipped
	case o.err != nil:
		return OutcomeError
	case o.Found:
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}

// Section aggregates one algorithm over the whole problem set.
type Section struct {
	Algorithm string
	Title     string
	Outcomes  []Outcome

	Solved  int
	Skipped int

	// TotalExpanded is read from the counter shared by the section's searches.
	TotalExpanded int64

	// AvgExpanded averages over the problems actually searched; AvgLength and
	// AvgCost average over the solved ones.
	AvgExpanded float64
	AvgLength   float64
	AvgCost     float64

	// Duration sums the wall time of every search in the section.
	Duration time.Duration
}

func newSection(algorithm, title string, outcomes []Outcome, expanded int64) Section {
	s := Section{
		Algorithm:     algorithm,
		Title:         title,
		Outcomes:      outcomes,
		TotalExpanded: expanded,
	}
	var length, cost int
	for _, o := range outcomes {
		s.Duration += o.Duration
		if o.Skipped {
			s.Skipped++
			continue
		}
		if o.Found {
			s.Solved++
			length += o.Length
			cost += o.Cost
		}
	}
	if ran := len(outcomes) - s.Skipped; ran > 0 {
		s.AvgExpanded = float64(expanded) / float64(ran)
	}
	if s.Solved > 0 {
		s.AvgLength = float64(length) / float64(s.Solved)
		s.AvgCost = float64(cost) / float64(s.Solved)
	}

	return s
}

// Report is the outcome of a Runner.Run.
type Report struct {
	RunID    string
	Domain   string
	Sections []Section
	Elapsed  time.Duration
}

// Section returns the section of algorithm, if it ran.
func (r *Report) Section(algorithm string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Algorithm == algorithm {
			return s, true
		}
	}

	return Section{}, false
}

// Write renders the report: per algorithm, one block per problem followed by
// the averages.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s", r.RunID)
	if r.Domain != "" {
		fmt.Fprintf(&b, " (%s)", r.Domain)
	}
	b.WriteString("\n")
	for _, s := range r.Sections {
		tag := strings.ToUpper(s.Algorithm)
		fmt.Fprintf(&b, "\n%s\n", s.Title)
		for _, o := range s.Outcomes {
			fmt.Fprintf(&b, "\n%s Problem #%d\n", tag, o.Problem)
			if o.Skipped {
				b.WriteString("Skipped: goal unreachable\n")
				continue
			}
			fmt.Fprintf(&b, "Time: %.6f\n", o.Duration.Seconds())
			fmt.Fprintf(&b, "Expanded: %d\n", o.Expanded)
			if !o.Found {
				b.WriteString("No solution found\n")
				continue
			}
			fmt.Fprintf(&b, "Path length: %d\n", o.Length)
			fmt.Fprintf(&b, "Path cost: %d\n", o.Cost)
			if o.Path != "" {
				fmt.Fprintf(&b, "\nSOLUTION PATH:\n%s", o.Path)
			}
		}
		fmt.Fprintf(&b, "\nSolved: %d/%d\n", s.Solved, len(s.Outcomes)-s.Skipped)
		fmt.Fprintf(&b, "Average Expanded States: %.2f\n", s.AvgExpanded)
		fmt.Fprintf(&b, "Average Path Length: %.2f\n", s.AvgLength)
		fmt.Fprintf(&b, "Average Cost: %.2f\n", s.AvgCost)
	}
	fmt.Fprintf(&b, "\nTotal time: %s\n", r.Elapsed.Round(time.Microsecond))

	_, err := io.WriteString(w, b.String())

	return err
}
