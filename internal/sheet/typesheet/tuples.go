package typesheet

import (
	"fmt"
	"io"
)

// minMax returns two values; multiple returns are Go's tuples.
func minMax(nums []int) (int, int) {
	lo, hi := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return lo, hi
}

func Tuples(w io.Writer) error {
	a, b, c := 1, "x", true
	fmt.Fprintf(w, "%d %s %t\n", a, b, c)

	lo, hi := minMax([]int{3, 1, 4, 1, 5})
	fmt.Fprintf(w, "min=%d max=%d\n", lo, hi)
	return nil
}
