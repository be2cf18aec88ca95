package lang

import (
	"fmt"
	"io"
)

// Control demonstrates if/else, the three for-loop forms, and break.
func Control(w io.Writer) error {
	// 1. if/else choosing a value
	n := 7
	v := "small"
	if n > 5 {
		v = "big"
	}
	fmt.Fprintf(w, "n is %s\n", v)

	// 2. counted loop
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "for i=%d\n", i)
	}

	// 3. condition-only loop (while)
	i := 0
	for i < 2 {
		fmt.Fprintf(w, "while i=%d\n", i)
		i++
	}

	// 4. bare loop with break
	loops := 0
	for {
		loops++
		if loops == 2 {
			break
		}
	}
	fmt.Fprintf(w, "looped %d times\n", loops)
	return nil
}
