package lang

import (
	"fmt"
	"io"
)

// Patterns demonstrates multi-assignment, comma-ok narrowing, and switch
// cases over ranges and alternatives.
func Patterns(w io.Writer) error {
	p, q := 1, 2
	fmt.Fprintf(w, "destructure: p=%d, q=%d\n", p, q)

	m := map[string]int{"x": 5}
	if x, ok := m["x"]; ok {
		fmt.Fprintf(w, "comma-ok got %d\n", x)
	}

	switch n := 5; {
	case n >= 1 && n <= 3:
		fmt.Fprintln(w, "1..=3")
	case n == 4 || n == 5:
		fmt.Fprintln(w, "4 or 5")
	default:
		fmt.Fprintln(w, "other")
	}
	return nil
}
