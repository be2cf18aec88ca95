package sheet

import "io"

// Section is one demo block: a named, titled unit that writes its fixed
// output to w. Sections hold no state between runs.
type Section struct {
	Name  string
	Title string
	Run   func(w io.Writer) error
}

// Sheet is an ordered list of sections under one name.
type Sheet struct {
	Name     string
	Sections []Section
}

// Section returns the named section, if present.
func (s Sheet) Section(name string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// Select resolves names to sections, preserving the sheet's declaration
// order regardless of the order the names were given in. With no names it
// returns every section.
func (s Sheet) Select(names ...string) ([]Section, error) {
	if len(names) == 0 {
		return s.Sections, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := s.Section(n); !ok {
			return nil, &OpError{
				Op:   "sheet.select",
				Kind: KindUnknownSection,
				Name: n,
				Err:  ErrUnknownSection,
			}
		}
		want[n] = true
	}

	var out []Section
	for _, sec := range s.Sections {
		if want[sec.Name] {
			out = append(out, sec)
		}
	}
	return out, nil
}

// Registry holds sheets in a fixed order.
type Registry struct {
	sheets []Sheet
}

func NewRegistry(sheets ...Sheet) *Registry {
	return &Registry{sheets: sheets}
}

// Sheets returns the sheets in registration order.
func (r *Registry) Sheets() []Sheet {
	return r.sheets
}

// Lookup returns the named sheet, if present.
func (r *Registry) Lookup(name string) (Sheet, bool) {
	for _, s := range r.sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Run executes the named sheet's sections (all of them, or just the named
// ones) against w, in declaration order.
func (r *Registry) Run(w io.Writer, sheet string, sections ...string) error {
	s, ok := r.Lookup(sheet)
	if !ok {
		return &OpError{
			Op:   "sheet.run",
			Kind: KindUnknownSheet,
			Name: sheet,
			Err:  ErrUnknownSheet,
		}
	}

	selected, err := s.Select(sections...)
	if err != nil {
		return err
	}

	for _, sec := range selected {
		if err := sec.Run(w); err != nil {
			return &OpError{Op: "sheet.run", Kind: KindExecution, Name: sec.Name, Err: err}
		}
	}
	return nil
}
