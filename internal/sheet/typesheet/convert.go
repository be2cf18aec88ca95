package typesheet

import (
	"fmt"
	"io"
	"strconv"
)

// Convert demonstrates the string/number conversions.
func Convert(w io.Writer) error {
	num, err := strconv.Atoi("123")
	if err != nil {
		return err
	}
	s := strconv.Itoa(num)
	fmt.Fprintf(w, "%d -> %s\n", num, s)

	// string(rune) converts a code point, not a number
	r := string(rune(65))
	fmt.Fprintf(w, "rune 65 -> %s\n", r)
	return nil
}

// Clone demonstrates deep copy vs header sharing for byte slices.
func Clone(w io.Writer) error {
	orig := []byte("data")
	cp := make([]byte, len(orig))
	copy(cp, orig)

	cp[0] = 'D' // deep copy: orig is untouched
	fmt.Fprintf(w, "%s %s\n", orig, cp)

	shared := orig // header copy: same backing array
	shared[0] = 'X'
	fmt.Fprintf(w, "%s %s\n", orig, shared)
	return nil
}
