package search

import (
	"fmt"
	"strings"
)

// FormatPath renders the solution of res as "Step i -> state" lines, from
// start to goal. It returns "" when res has no solution.
func FormatPath[S State[S]](res Result[S]) string {
	var b strings.Builder
	for i, s := range res.Path() {
		fmt.Fprintf(&b, "Step %d -> %v\n", i+1, s)
	}

	return b.String()
}
