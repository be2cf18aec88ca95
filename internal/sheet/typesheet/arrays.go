package typesheet

import (
	"fmt"
	"io"
)

// Arrays demonstrates fixed-size arrays and slice views over them.
func Arrays(w io.Writer) error {
	arr := [3]int{10, 20, 30} // fixed size, value semantics
	slc := arr[0:2]           // view into arr's storage

	fmt.Fprintf(w, "arr=%v slc=%v\n", arr, slc)
	return nil
}

// Vec demonstrates the growable slice.
func Vec(w io.Writer) error {
	v := []int{1, 2, 3}
	v = append(v, 4)
	fmt.Fprintf(w, "v=%v len=%d\n", v, len(v))
	return nil
}
