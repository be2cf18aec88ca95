package lang

import (
	"fmt"
	"io"
)

// MaxScore shows a typed package-level constant.
const MaxScore int = 99

// Variables demonstrates short declarations, reassignment, constants, and
// underscored numeric literals.
func Variables(w io.Writer) error {
	x := 5
	y := 10
	y += 1

	big := 1_000_000 // underscores ok

	fmt.Fprintf(w, "x=%d, y=%d, MAX=%d, big=%d\n", x, y, MaxScore, big)
	return nil
}
