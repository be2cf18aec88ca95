package typesheet

import (
	"fmt"
	"io"
)

// Refs demonstrates the read-copy / write-pointer split: take a copy to
// read, take the one live *int to write.
func Refs(w io.Writer) error {
	n := 5
	r1 := n  // a read: copy the value out
	r2 := &n // the writer
	*r2 += 1

	fmt.Fprintf(w, "r1=%d, n=%d\n", r1, n)
	return nil
}
