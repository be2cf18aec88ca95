// Package typesheet is the types cheat sheet: primitives, strings,
// pointers, composite types, containers, interfaces, and conversions.
package typesheet

import "github.com/v4rm4n/gosheet/internal/sheet"

// New returns the types sheet with its sections in teaching order.
func New() sheet.Sheet {
	return sheet.Sheet{
		Name: "types",
		Sections: []sheet.Section{
			{Name: "primitives", Title: "Primitives", Run: Primitives},
			{Name: "strings", Title: "Strings", Run: Strings},
			{Name: "refs", Title: "Pointers + Mutability", Run: Refs},
			{Name: "tuples", Title: "Multiple Values", Run: Tuples},
			{Name: "arrays", Title: "Arrays + Slice Views", Run: Arrays},
			{Name: "vec", Title: "Growable Slices", Run: Vec},
			{Name: "optres", Title: "Option + Result Literals", Run: OptRes},
			{Name: "collections", Title: "String Collections", Run: Collections},
			{Name: "mapset", Title: "Map + Set", Run: MapSet},
			{Name: "structenum", Title: "Struct + Tagged Union", Run: StructEnum},
			{Name: "generics", Title: "Generics", Run: Generics},
			{Name: "dyn", Title: "Dynamic Dispatch", Run: Dyn},
			{Name: "convert", Title: "Conversions", Run: Convert},
			{Name: "encode", Title: "Struct Tags + Encoding", Run: Encode},
			{Name: "clone", Title: "Copy vs Share", Run: Clone},
		},
	}
}
