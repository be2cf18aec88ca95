package typesheet

import (
	"fmt"
	"io"
)

// Primitives demonstrates the basic scalar types in one line.
//
// Integer families: int8 int16 int32 int64 int / uint8 uint16 uint32
// uint64 uint uintptr. byte aliases uint8, rune aliases int32.
func Primitives(w io.Writer) error {
	b := true

	// rune is a Unicode code point; byte is a single octet.
	c := 'A'
	var by byte = 'A'

	var i int32 = -123
	var u uint64 = 123

	// Lengths and indexes are plain int, not a separate size type.
	n := -1
	sz := 10

	var f1 float32 = 3.14
	f2 := 2.71828 // float64 by default

	fmt.Fprintf(w, "%t %c %d %d %d %d %d %g %g\n", b, c, by, i, u, n, sz, f1, f2)
	return nil
}
