package lang

import (
	"fmt"
	"io"
)

func Add(a int, b int) int {
	return a + b
}

// Clamp bounds val to [min, max].
func Clamp(val int, min int, max int) int {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

// SumSlice adds up every element.
func SumSlice(nums []int) int {
	total := 0
	for _, n := range nums {
		total = total + n
	}
	return total
}

func Functions(w io.Writer) error {
	fmt.Fprintf(w, "add(2,3)=%d\n", Add(2, 3))
	fmt.Fprintf(w, "clamp(150,0,100)=%d\n", Clamp(150, 0, 100))
	fmt.Fprintf(w, "sum([1 2 3])=%d\n", SumSlice([]int{1, 2, 3}))
	return nil
}
