package typesheet

import (
	"fmt"
	"io"

	"github.com/v4rm4n/gosheet/internal/sheet/lang"
)

// Number constrains Point to the numeric types it makes sense for.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a generic pair of coordinates.
type Point[T Number] struct {
	X, Y T
}

func StructEnum(w io.Writer) error {
	p := Point[float64]{X: 1.0, Y: 2.0}
	fmt.Fprintf(w, "point=%+v\n", p)

	msg := lang.Move{X: 3, Y: 4}
	fmt.Fprintf(w, "msg=%s\n", lang.Describe(msg))
	return nil
}

// Generics demonstrates one function over two instantiations.
func Generics(w io.Writer) error {
	a := lang.ID(9)
	b := lang.ID("hi")
	fmt.Fprintf(w, "id: %d %s\n", a, b)
	return nil
}
