package lang

import (
	"fmt"
	"io"
)

// ReadStr takes the string by value: the callee can read it but the
// caller's variable is untouched.
func ReadStr(w io.Writer, s string) {
	fmt.Fprintf(w, "read: %s\n", s)
}

// MutStr takes a pointer: the one writer. Nothing else should read s
// while the pointer is live.
func MutStr(s *string) {
	*s += "!"
}

// Ownership demonstrates the value/pointer split that stands in for
// shared and exclusive borrows: pass by value to share read-only, pass a
// pointer to hand out the single mutating reference.
func Ownership(w io.Writer) error {
	s := "hello"
	ReadStr(w, s)
	fmt.Fprintf(w, "still have s: %s\n", s)

	t := "yo"
	MutStr(&t)
	fmt.Fprintf(w, "after mut: %s\n", t)

	// Assigning an int copies it.
	a := 123
	b := a
	fmt.Fprintf(w, "a=%d, b=%d\n", a, b)

	// Assigning a slice copies the header only; both names see the same
	// backing array. Treat the old name as dead after handing it off.
	v1 := []int{1, 2}
	v2 := v1
	v2[0] = 9
	fmt.Fprintf(w, "v2=%v shares backing array with v1=%v\n", v2, v1)
	return nil
}
