package typesheet

import (
	"fmt"
	"io"

	"github.com/v4rm4n/gosheet/internal/sheet/lang"
)

// Str attaches Speak behavior to a plain string.
type Str string

func (s Str) Speak() string {
	return fmt.Sprintf("str %s", s)
}

// Dyn walks a slice of interface values: each element carries its own
// method table, so the call dispatches dynamically.
func Dyn(w io.Writer) error {
	things := []lang.Speaker{lang.Num(7), Str("yo")}
	for _, t := range things {
		fmt.Fprintf(w, "speak: %s\n", t.Speak())
	}
	return nil
}
