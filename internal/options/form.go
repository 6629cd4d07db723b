package options

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"jordanella.com/campaign-options/internal/atb"
)

// ErrNoRecords is returned when a form is loaded without any options record
var ErrNoRecords = errors.New("no options record to load")

// ChangeListener is called with the ids whose values or enablement changed
type ChangeListener func(ids []string)

// Form holds the editor's working values. Nothing reaches the records
// until Commit, which writes into fresh copies.
type Form struct {
	mu        sync.RWMutex
	schema    *Schema
	values    map[string]any
	baseline  map[string]any
	enabled   map[string]bool
	retained  Records
	listeners []ChangeListener
}

// NewForm creates a form showing default values
func NewForm(schema *Schema) *Form {
	f := &Form{schema: schema}
	f.fill(DefaultRecords())
	return f
}

// Schema returns the binding table the form edits
func (f *Form) Schema() *Schema {
	return f.schema
}

// OnChange registers a listener for value and enablement changes
func (f *Form) OnChange(fn ChangeListener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Load shows the given records. A nil record falls back to the one
// retained from the previous load; a nil skill record with nothing
// retained leaves the skill fields as they are.
func (f *Form) Load(r Records) error {
	f.mu.Lock()
	if r.Options == nil {
		r.Options = f.retained.Options
	}
	if r.Skills == nil {
		r.Skills = f.retained.Skills
	}
	if r.Options == nil {
		f.mu.Unlock()
		return ErrNoRecords
	}
	f.retained = r
	f.fill(r)
	ids := f.allIDs()
	f.mu.Unlock()

	f.notify(ids)
	return nil
}

// fill reads every field present in r; callers hold the lock
func (f *Form) fill(r Records) {
	if f.values == nil {
		f.values = make(map[string]any, len(f.schema.fields))
	}
	for _, fld := range f.schema.fields {
		if fld.hasRecord(r) {
			f.values[fld.ID] = fld.get(r)
		}
	}
	f.baseline = make(map[string]any, len(f.values))
	for id, v := range f.values {
		f.baseline[id] = v
	}
	f.recompute()
}

func (f *Form) recompute() {
	f.enabled = f.schema.deps.Evaluate(func(id string) any { return f.values[id] })
}

func (f *Form) allIDs() []string {
	ids := make([]string, len(f.schema.fields))
	for i, fld := range f.schema.fields {
		ids[i] = fld.ID
	}
	return ids
}

// Retained returns the records the form was last loaded from
func (f *Form) Retained() Records {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.retained
}

// Value returns the working value of a field
func (f *Form) Value(id string) (any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	return v, nil
}

// Bool returns a boolean field, false when id is not a boolean
func (f *Form) Bool(id string) bool {
	v, _ := f.Value(id)
	b, _ := v.(bool)
	return b
}

// Int returns an integer field, zero when id is not an integer
func (f *Form) Int(id string) int {
	v, _ := f.Value(id)
	n, _ := v.(int)
	return n
}

// Float returns a float field, zero when id is not a float
func (f *Form) Float(id string) float64 {
	v, _ := f.Value(id)
	x, _ := v.(float64)
	return x
}

// StringValue returns a string or choice field
func (f *Form) StringValue(id string) string {
	v, _ := f.Value(id)
	s, _ := v.(string)
	return s
}

// Text returns the working value formatted for display
func (f *Form) Text(id string) (string, error) {
	fld, ok := f.schema.Field(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	v, err := f.Value(id)
	if err != nil {
		return "", err
	}
	return fld.Format(v), nil
}

// Set changes one working value. Battle intensity and the battle chances
// are kept in step: setting either side recomputes the other.
func (f *Form) Set(id string, v any) error {
	fld, ok := f.schema.Field(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	checked, err := fld.Check(v)
	if err != nil {
		return err
	}

	f.mu.Lock()
	changed := f.apply(fld, checked)
	f.mu.Unlock()

	if len(changed) > 0 {
		f.notify(changed)
	}
	return nil
}

// SetText parses text for the field and sets it
func (f *Form) SetText(id, text string) error {
	fld, ok := f.schema.Field(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	v, err := fld.Parse(text)
	if err != nil {
		return err
	}
	return f.Set(id, v)
}

// apply stores a checked value and returns every id that changed;
// callers hold the lock
func (f *Form) apply(fld Field, v any) []string {
	if reflect.DeepEqual(f.values[fld.ID], v) {
		return nil
	}
	f.values[fld.ID] = v
	changed := []string{fld.ID}

	switch {
	case fld.ID == FieldBattleIntensity:
		chances := atb.BattleChances(v.(float64))
		for i, cid := range BattleChanceIDs {
			if f.values[cid] != chances[i] {
				f.values[cid] = chances[i]
				changed = append(changed, cid)
			}
		}
	case isBattleChance(fld.ID):
		var chances [4]int
		for i, cid := range BattleChanceIDs {
			chances[i], _ = f.values[cid].(int)
		}
		intensity := atb.BattleIntensity(chances)
		if f.values[FieldBattleIntensity] != intensity {
			f.values[FieldBattleIntensity] = intensity
			changed = append(changed, FieldBattleIntensity)
		}
	}

	affected := f.schema.deps.Affected(fld.ID)
	if len(affected) > 0 {
		f.recompute()
		changed = append(changed, affected...)
	}
	return changed
}

func isBattleChance(id string) bool {
	for _, cid := range BattleChanceIDs {
		if cid == id {
			return true
		}
	}
	return false
}

// Enabled reports whether a field is currently editable
func (f *Form) Enabled(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	enabled, gated := f.enabled[id]
	return !gated || enabled
}

// Changed lists the non-derived fields whose working value differs from
// the last load, in table order
func (f *Form) Changed() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []string
	for _, fld := range f.schema.fields {
		if fld.Derived {
			continue
		}
		if !reflect.DeepEqual(f.values[fld.ID], f.baseline[fld.ID]) {
			out = append(out, fld.ID)
		}
	}
	return out
}

// Commit writes every working value into copies of the retained records
// and returns them. On error the copies are discarded and nothing the
// form was loaded from has been touched.
func (f *Form) Commit() (Records, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	staged := f.retained.Clone()
	defaults := DefaultRecords()
	if staged.Options == nil {
		staged.Options = defaults.Options
	}
	if staged.Skills == nil {
		staged.Skills = defaults.Skills
	}

	for _, fld := range f.schema.fields {
		if fld.Derived {
			continue
		}
		if err := fld.Write(staged, f.values[fld.ID]); err != nil {
			return Records{}, fmt.Errorf("commit %s: %w", fld.ID, err)
		}
	}
	return staged, nil
}

func (f *Form) notify(ids []string) {
	f.mu.RLock()
	listeners := append([]ChangeListener(nil), f.listeners...)
	f.mu.RUnlock()
	for _, fn := range listeners {
		fn(ids)
	}
}
