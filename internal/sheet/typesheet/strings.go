package typesheet

import (
	"fmt"
	"io"
	"strings"
)

// TakesStr reads any string; Go has one string type, so there is no
// owned/borrowed split to bridge at call sites.
func TakesStr(w io.Writer, s string) {
	fmt.Fprintf(w, "takes_str: %s\n", s)
}

func Strings(w io.Writer) error {
	lit := "hello" // immutable contents

	var b strings.Builder // growable
	b.WriteString("hi")
	b.WriteString(" there")
	s := b.String()

	fmt.Fprintf(w, "%s | %s\n", lit, s)

	TakesStr(w, s)
	return nil
}
