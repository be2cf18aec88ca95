package lang

import (
	"fmt"
	"io"
	"sort"

	"github.com/v4rm4n/gosheet/internal/optres"
)

// LookupInt wraps the comma-ok map read in an Option.
func LookupInt(m map[string]int, key string) optres.Option[int] {
	if v, ok := m[key]; ok {
		return optres.Some(v)
	}
	return optres.None[int]()
}

// SetDefault inserts value only when key is absent (the entry/or_insert
// idiom) and returns the value now stored.
func SetDefault(m map[string]int, key string, value int) int {
	if v, ok := m[key]; ok {
		return v
	}
	m[key] = value
	return value
}

// Maps demonstrates insert, insert-if-absent, and lookups. Map iteration
// order is random, so printing walks the keys sorted.
func Maps(w io.Writer) error {
	m := map[string]int{}
	m["a"] = 1
	SetDefault(m, "b", 2)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprint(w, "map={")
	for i, k := range keys {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%s:%d", k, m[k])
	}
	fmt.Fprintln(w, "}")

	fmt.Fprintf(w, "a=%s, missing=%s\n", LookupInt(m, "a"), LookupInt(m, "zzz"))
	return nil
}
