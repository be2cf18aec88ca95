package lang

import (
	"fmt"
	"io"
)

// ID returns its argument for any type.
func ID[T any](x T) T {
	return x
}

// Speaker is the behavioral contract a value opts into by implementing
// the method.
type Speaker interface {
	Speak() string
}

// Num attaches behavior to a plain int.
type Num int

func (n Num) Speak() string {
	return fmt.Sprintf("num %d", n)
}

// PickLonger returns whichever string is longer; ties favor b.
func PickLonger(a, b string) string {
	if len(a) > len(b) {
		return a
	}
	return b
}

func Generics(w io.Writer) error {
	fmt.Fprintf(w, "id(9)=%d\n", ID(9))
	fmt.Fprintf(w, "id(\"hi\")=%s\n", ID("hi"))

	var spk Speaker = Num(42)
	fmt.Fprintf(w, "speak: %s\n", spk.Speak())

	fmt.Fprintf(w, "longer: %s\n", PickLonger("short", "looooong"))
	return nil
}
