package lang

import (
	"fmt"
	"io"
	"strings"
)

// Strings demonstrates building, formatting, and slicing strings.
func Strings(w io.Writer) error {
	// 1. Grow a string with a builder
	var b strings.Builder
	b.WriteString("phntm")
	b.WriteRune('z')
	name := b.String()

	greet := fmt.Sprintf("hi, %s", name)
	fmt.Fprintln(w, greet)

	s2 := "plain string literal"
	fmt.Fprintln(w, s2)

	// 2. Byte slicing: fine for ASCII, indexes bytes not runes
	ascii := "hello"
	fmt.Fprintf(w, "slice: %s\n", ascii[0:2])
	return nil
}
