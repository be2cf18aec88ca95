// Package lang is the general cheat sheet: core syntax, values and
// pointers, collections, structs, tagged unions, options and results,
// generics, and matching idioms. Each section prints a fixed output.
package lang

import "github.com/v4rm4n/gosheet/internal/sheet"

// New returns the lang sheet with its sections in teaching order.
func New() sheet.Sheet {
	return sheet.Sheet{
		Name: "lang",
		Sections: []sheet.Section{
			{Name: "variables", Title: "Variables + Constants", Run: Variables},
			{Name: "functions", Title: "Functions", Run: Functions},
			{Name: "control", Title: "Control Flow", Run: Control},
			{Name: "ownership", Title: "Values + Pointers", Run: Ownership},
			{Name: "strings", Title: "Strings", Run: Strings},
			{Name: "slices", Title: "Slices", Run: Slices},
			{Name: "maps", Title: "Maps", Run: Maps},
			{Name: "structs", Title: "Structs + Methods", Run: Structs},
			{Name: "enums", Title: "Tagged Unions + Type Switch", Run: Enums},
			{Name: "optres", Title: "Option + Result", Run: OptRes},
			{Name: "generics", Title: "Generics + Interfaces", Run: Generics},
			{Name: "patterns", Title: "Matching Idioms", Run: Patterns},
		},
	}
}
