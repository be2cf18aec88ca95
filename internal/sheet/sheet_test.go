package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

func demoSheet() Sheet {
	mk := func(line string) func(io.Writer) error {
		return func(w io.Writer) error {
			fmt.Fprintln(w, line)
			return nil
		}
	}
	return Sheet{
		Name: "demo",
		Sections: []Section{
			{Name: "one", Title: "One", Run: mk("one")},
			{Name: "two", Title: "Two", Run: mk("two")},
			{Name: "three", Title: "Three", Run: mk("three")},
		},
	}
}

// --- Sheet.Select ---

func TestSelect_AllByDefault(t *testing.T) {
	s := demoSheet()
	got, err := s.Select()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("Select() returned %d sections, want 3", len(got))
	}
}

func TestSelect_PreservesDeclarationOrder(t *testing.T) {
	s := demoSheet()
	got, err := s.Select("three", "one")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "one" || got[1].Name != "three" {
		t.Fatalf("Select(three, one) order = %v", names(got))
	}
}

func TestSelect_UnknownSection(t *testing.T) {
	s := demoSheet()
	_, err := s.Select("nope")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
	if !IsKind(err, KindUnknownSection) {
		t.Errorf("expected KindUnknownSection")
	}
}

// --- Registry ---

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(demoSheet())
	if _, ok := r.Lookup("demo"); !ok {
		t.Fatalf("expected to find sheet demo")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("found a sheet that was never registered")
	}
}

func TestRegistry_Run_UnknownSheet(t *testing.T) {
	r := NewRegistry(demoSheet())
	err := r.Run(io.Discard, "nope")
	if !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("err = %v, want ErrUnknownSheet", err)
	}
}

func TestRegistry_Run_InOrder(t *testing.T) {
	r := NewRegistry(demoSheet())
	var buf bytes.Buffer
	if err := r.Run(&buf, "demo"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "one\ntwo\nthree\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRegistry_Run_WrapsSectionError(t *testing.T) {
	cause := errors.New("boom")
	s := Sheet{Name: "bad", Sections: []Section{
		{Name: "explode", Run: func(io.Writer) error { return cause }},
	}}
	err := NewRegistry(s).Run(io.Discard, "bad")
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
	if !IsKind(err, KindExecution) {
		t.Errorf("expected KindExecution")
	}
}

// --- OpError ---

func TestOpError_Message(t *testing.T) {
	e := &OpError{Op: "sheet.run", Kind: KindUnknownSheet, Name: "x", Err: ErrUnknownSheet}
	want := "sheet.run: unknown_sheet (name=x): unknown sheet"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
}

func names(secs []Section) []string {
	out := make([]string, 0, len(secs))
	for _, s := range secs {
		out = append(out, s.Name)
	}
	return out
}
