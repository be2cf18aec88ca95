package typesheet

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// MapStrings returns a new slice with f applied to every element.
func MapStrings(in []string, f func(string) string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, f(s))
	}
	return out
}

func Collections(w io.Writer) error {
	words := []string{"a", "b", "c"}
	upper := MapStrings(words, strings.ToUpper)
	fmt.Fprintf(w, "%v %v\n", words, upper)
	return nil
}

// IntSet is a set of ints; struct{} values cost nothing.
type IntSet map[int]struct{}

func (s IntSet) Add(n int) { s[n] = struct{}{} }

func (s IntSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

func (s IntSet) Len() int { return len(s) }

func (s IntSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// MapSet demonstrates map insert/insert-if-absent and set semantics:
// inserting the same value twice leaves the size at 1.
func MapSet(w io.Writer) error {
	m := map[string]int{}
	m["a"] = 1
	if _, ok := m["b"]; !ok {
		m["b"] = 2
	}

	set := IntSet{}
	set.Add(10)
	set.Add(10)

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
	fmt.Fprintf(w, "} set=%v size=%d\n", set.Sorted(), set.Len())
	return nil
}
