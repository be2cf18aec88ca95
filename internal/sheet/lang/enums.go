package lang

import (
	"fmt"
	"io"
)

// Msg is a tagged union with three variants, modeled as a sealed
// interface: only types in this package satisfy it.
type Msg interface {
	isMsg()
}

// Quit carries no payload.
type Quit struct{}

// Write carries a string payload.
type Write struct {
	Text string
}

// Move carries named coordinates.
type Move struct {
	X, Y int
}

func (Quit) isMsg()  {}
func (Write) isMsg() {}
func (Move) isMsg()  {}

// Handle dispatches on the variant and prints one line per message.
func Handle(w io.Writer, m Msg) {
	switch m := m.(type) {
	case Quit:
		fmt.Fprintln(w, "quit")
	case Write:
		fmt.Fprintf(w, "write: %s\n", m.Text)
	case Move:
		fmt.Fprintf(w, "move: %d,%d\n", m.X, m.Y)
	}
}

// Describe names the variant without touching its payload.
func Describe(m Msg) string {
	switch m.(type) {
	case Quit:
		return "quit"
	case Write:
		return "write"
	case Move:
		return "move"
	}
	return "unknown"
}

func Enums(w io.Writer) error {
	Handle(w, Write{Text: "hey"})
	Handle(w, Move{X: 3, Y: 4})
	Handle(w, Quit{})
	return nil
}
