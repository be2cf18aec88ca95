package typesheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/v4rm4n/gosheet/internal/optres"
)

// OptRes demonstrates the container literals directly.
func OptRes(w io.Writer) error {
	maybe := optres.Some(7)
	none := optres.None[int]()
	fmt.Fprintf(w, "%s %s\n", maybe, none)

	ok := optres.Ok(42)
	err := optres.Err[int](errors.New("nope"))
	fmt.Fprintf(w, "%s %s\n", ok, err)
	return nil
}
