package options

import (
	"fmt"
	"slices"
)

// Entry is one field rendered as text for a file format
type Entry struct {
	Tab  Tab
	ID   string
	Text string
}

// Lookup returns the stored text for a field, if present
type Lookup func(tab Tab, id string) (string, bool)

// Export renders every stored field of r in table order. Derived fields
// and fields of a missing record are skipped.
func (s *Schema) Export(r Records) []Entry {
	var out []Entry
	for _, f := range s.fields {
		if f.Derived || !f.hasRecord(r) {
			continue
		}
		out = append(out, Entry{Tab: f.Tab, ID: f.ID, Text: f.Format(f.get(r))})
	}
	return out
}

// Import writes the values found by lookup into r. Fields lookup does not
// know keep their current value. The first unparsable value aborts the
// import; r may then be partly written, so callers import into a copy.
func (s *Schema) Import(r Records, lookup Lookup) error {
	for _, f := range s.fields {
		if f.Derived || !f.hasRecord(r) {
			continue
		}
		text, ok := lookup(f.Tab, f.ID)
		if !ok {
			continue
		}
		v, err := f.Parse(text)
		if err != nil {
			return fmt.Errorf("import %s.%s: %w", f.Tab.ID, f.ID, err)
		}
		f.set(r, v)
	}
	return nil
}

// ImportMap imports from a flat id to text map. Keys that name no stored
// field of r are returned sorted so callers can report them.
func (s *Schema) ImportMap(r Records, values map[string]string) (unknown []string, err error) {
	for id := range values {
		f, ok := s.Field(id)
		if !ok || f.Derived || !f.hasRecord(r) {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)

	err = s.Import(r, func(_ Tab, id string) (string, bool) {
		text, ok := values[id]
		return text, ok
	})
	return unknown, err
}

// ExportMap renders the stored fields of r as a flat id to text map
func (s *Schema) ExportMap(r Records) map[string]string {
	out := make(map[string]string)
	for _, e := range s.Export(r) {
		out[e.ID] = e.Text
	}
	return out
}
