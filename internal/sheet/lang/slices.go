package lang

import (
	"fmt"
	"io"

	"github.com/v4rm4n/gosheet/internal/optres"
)

// Get is the safe indexing counterpart to nums[i]: absent instead of a
// panic when i is out of range.
func Get(nums []int, i int) optres.Option[int] {
	if i < 0 || i >= len(nums) {
		return optres.None[int]()
	}
	return optres.Some(nums[i])
}

// Slices demonstrates append, indexing, safe access, and in-place update.
func Slices(w io.Writer) error {
	nums := []int{1, 2, 3}
	nums = append(nums, 4)

	// indexing panics if out of bounds; Get does not
	first := nums[0]
	maybeFirst := Get(nums, 0)

	fmt.Fprintf(w, "nums=%v, first=%d, maybe_first=%s\n", nums, first, maybeFirst)

	for _, n := range nums {
		fmt.Fprintf(w, "%d ", n)
	}
	fmt.Fprintln(w)

	for i := range nums {
		nums[i] += 10
	}
	fmt.Fprintf(w, "nums after +10: %v\n", nums)
	return nil
}
