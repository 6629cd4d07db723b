package options

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"jordanella.com/campaign-options/internal/campaign"
)

var (
	// ErrUnknownField is returned for ids missing from the schema
	ErrUnknownField = errors.New("unknown option field")
	// ErrFieldType is returned when a value has the wrong type for its field
	ErrFieldType = errors.New("wrong value type for option field")
	// ErrOutOfRange is returned for numbers outside a field's bounds
	ErrOutOfRange = errors.New("option value out of range")
	// ErrInvalidChoice is returned for a choice not offered by a field
	ErrInvalidChoice = errors.New("invalid choice for option field")
)

// Kind is the value type of a bound field
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindChoice
	// KindList values are []string
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChoice:
		return "choice"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Tab groups fields into one editor page and one INI section
type Tab struct {
	ID    string
	Title string
}

// Records are the two records the editor binds to
type Records struct {
	Options *campaign.Options
	Skills  *campaign.RandomSkillPreferences
}

// DefaultRecords returns freshly defaulted records
func DefaultRecords() Records {
	return Records{
		Options: campaign.NewDefaultOptions(),
		Skills:  campaign.NewDefaultRandomSkillPreferences(),
	}
}

// Clone deep-copies both records
func (r Records) Clone() Records {
	return Records{Options: r.Options.Clone(), Skills: r.Skills.Clone()}
}

// RecordKind tells which record a field lives in
type RecordKind int

const (
	RecordOptions RecordKind = iota
	RecordSkills
)

// Field binds one editor control to one record field
type Field struct {
	ID      string
	Tab     Tab
	Label   string
	Tooltip string
	Kind    Kind
	Min     float64
	Max     float64
	Step    float64
	Choices []string
	// Derived fields are computed from other fields and never written back
	Derived bool
	Record  RecordKind

	get func(Records) any
	set func(Records, any)
}

func (f Field) bounded() bool {
	return (f.Kind == KindInt || f.Kind == KindFloat) && f.Max > f.Min
}

func (f Field) hasRecord(r Records) bool {
	if f.Record == RecordSkills {
		return r.Skills != nil
	}
	return r.Options != nil
}

// Read returns the field's current value from the records
func (f Field) Read(r Records) any {
	return f.get(r)
}

// Write checks v and stores it into the records. Derived fields ignore writes.
func (f Field) Write(r Records, v any) error {
	if f.Derived {
		return nil
	}
	checked, err := f.Check(v)
	if err != nil {
		return err
	}
	f.set(r, checked)
	return nil
}

// Check validates v against the field and returns it in canonical form
func (f Field) Check(v any) (any, error) {
	switch f.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants bool, got %T", ErrFieldType, f.ID, v)
		}
		return b, nil

	case KindInt:
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants int, got %T", ErrFieldType, f.ID, v)
		}
		if f.bounded() && (float64(n) < f.Min || float64(n) > f.Max) {
			return nil, fmt.Errorf("%w: %s=%d not in [%g, %g]", ErrOutOfRange, f.ID, n, f.Min, f.Max)
		}
		return n, nil

	case KindFloat:
		var x float64
		switch t := v.(type) {
		case float64:
			x = t
		case int:
			x = float64(t)
		default:
			return nil, fmt.Errorf("%w: %s wants float, got %T", ErrFieldType, f.ID, v)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrOutOfRange, f.ID, x)
		}
		if f.bounded() && (x < f.Min || x > f.Max) {
			return nil, fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrOutOfRange, f.ID, x, f.Min, f.Max)
		}
		return x, nil

	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants string, got %T", ErrFieldType, f.ID, v)
		}
		return s, nil

	case KindChoice:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants choice, got %T", ErrFieldType, f.ID, v)
		}
		for _, c := range f.Choices {
			if strings.EqualFold(c, s) {
				return c, nil
			}
		}
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidChoice, f.ID, s)

	case KindList:
		items, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants list, got %T", ErrFieldType, f.ID, v)
		}
		return slices.Clone(items), nil
	}
	return nil, fmt.Errorf("%w: %s has unknown kind", ErrFieldType, f.ID)
}

// Parse converts text into a checked value for the field
func (f Field) Parse(text string) (any, error) {
	text = strings.TrimSpace(text)
	var v any
	var err error
	switch f.Kind {
	case KindBool:
		v, err = strconv.ParseBool(text)
	case KindInt:
		v, err = strconv.Atoi(text)
	case KindFloat:
		v, err = strconv.ParseFloat(text, 64)
	case KindList:
		v, err = parseList(text)
	default:
		v = text
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFieldType, f.ID, err)
	}
	return f.Check(v)
}

// Format renders a value as text
func (f Field) Format(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	case []string:
		return formatList(t)
	default:
		return fmt.Sprint(v)
	}
}

// Schema is the ordered binding table plus the enablement rules
type Schema struct {
	fields []Field
	index  map[string]int
	deps   *Dependencies
}

// NewSchema validates and indexes a binding table
func NewSchema(fields []Field, deps []Dependency) (*Schema, error) {
	s := &Schema{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.ID == "" {
			return nil, errors.New("field with empty id")
		}
		if _, dup := s.index[f.ID]; dup {
			return nil, fmt.Errorf("duplicate field id %s", f.ID)
		}
		if f.get == nil || (!f.Derived && f.set == nil) {
			return nil, fmt.Errorf("field %s has no accessor", f.ID)
		}
		s.index[f.ID] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	d, err := newDependencies(deps, func(id string) bool {
		_, ok := s.index[id]
		return ok
	})
	if err != nil {
		return nil, err
	}
	s.deps = d
	return s, nil
}

// Fields returns the fields in table order
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field finds one field by id
func (s *Schema) Field(id string) (Field, bool) {
	i, ok := s.index[id]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Tabs returns the tabs in order of first appearance
func (s *Schema) Tabs() []Tab {
	var tabs []Tab
	seen := make(map[string]bool)
	for _, f := range s.fields {
		if !seen[f.Tab.ID] {
			seen[f.Tab.ID] = true
			tabs = append(tabs, f.Tab)
		}
	}
	return tabs
}

// FieldsIn returns the fields of one tab in table order
func (s *Schema) FieldsIn(tab Tab) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Tab.ID == tab.ID {
			out = append(out, f)
		}
	}
	return out
}

// Dependencies returns the enablement rules
func (s *Schema) Dependencies() *Dependencies {
	return s.deps
}

// idSuffix turns a display name into an id fragment ("Ultra-Green" -> "UltraGreen")
func idSuffix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
