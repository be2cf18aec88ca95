package lang

import (
	"fmt"
	"io"
	"strconv"

	"github.com/v4rm4n/gosheet/internal/optres"
)

// MaybePos yields a present value iff n > 0.
func MaybePos(n int) optres.Option[int] {
	if n > 0 {
		return optres.Some(n)
	}
	return optres.None[int]()
}

// ParseI32 succeeds iff s is a base-10 integer literal that fits in 32
// bits.
func ParseI32(s string) optres.Result[int32] {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return optres.Err[int32](err)
	}
	return optres.Ok(int32(n))
}

// ParsePlusOne shows error propagation: a failure from ParseI32 is
// returned to the caller unchanged.
func ParsePlusOne(s string) (int32, error) {
	n, err := ParseI32(s).Get()
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func OptRes(w io.Writer) error {
	fmt.Fprintf(w, "maybe_pos(-1)=%s\n", MaybePos(-1))
	fmt.Fprintf(w, "maybe_pos(7)=%s\n", MaybePos(7))

	if n, err := ParseI32("123").Get(); err != nil {
		fmt.Fprintf(w, "parse error: %v\n", err)
	} else {
		fmt.Fprintf(w, "parsed: %d\n", n)
	}

	fmt.Fprintf(w, "parse_i32(\"abc\")=%s\n", ParseI32("abc"))

	if n, err := ParsePlusOne("77"); err != nil {
		fmt.Fprintf(w, "parse_plus_one err: %v\n", err)
	} else {
		fmt.Fprintf(w, "parse_plus_one ok: %d\n", n)
	}
	return nil
}
