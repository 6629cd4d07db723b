package options

import (
	"fmt"
	"slices"

	"jordanella.com/campaign-options/internal/campaign"
)

// accessor reads and writes one typed value inside the records
type accessor[T any] struct {
	record RecordKind
	get    func(Records) T
	set    func(Records, T)
}

func inOptions[T any](ptr func(*campaign.Options) *T) accessor[T] {
	return accessor[T]{
		record: RecordOptions,
		get:    func(r Records) T { return *ptr(r.Options) },
		set:    func(r Records, v T) { *ptr(r.Options) = v },
	}
}

func inSkills[T any](ptr func(*campaign.RandomSkillPreferences) *T) accessor[T] {
	return accessor[T]{
		record: RecordSkills,
		get:    func(r Records) T { return *ptr(r.Skills) },
		set:    func(r Records, v T) { *ptr(r.Skills) = v },
	}
}

// optionsEntry binds one key of a map in the options record.
// Writing creates the map when the record has none.
func optionsEntry[K comparable, V any](ptr func(*campaign.Options) *map[K]V, key K) accessor[V] {
	return accessor[V]{
		record: RecordOptions,
		get:    func(r Records) V { return (*ptr(r.Options))[key] },
		set: func(r Records, v V) {
			m := ptr(r.Options)
			if *m == nil {
				*m = make(map[K]V)
			}
			(*m)[key] = v
		},
	}
}

func skillsEntry[K comparable, V any](ptr func(*campaign.RandomSkillPreferences) *map[K]V, key K) accessor[V] {
	return accessor[V]{
		record: RecordSkills,
		get:    func(r Records) V { return (*ptr(r.Skills))[key] },
		set: func(r Records, v V) {
			m := ptr(r.Skills)
			if *m == nil {
				*m = make(map[K]V)
			}
			(*m)[key] = v
		},
	}
}

func boolField(tab Tab, id, label, tip string, a accessor[bool]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindBool,
		Record:  a.record,
		get:     func(r Records) any { return a.get(r) },
		set:     func(r Records, v any) { a.set(r, v.(bool)) },
	}
}

func intField(tab Tab, id, label, tip string, min, max int, a accessor[int]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindInt,
		Min:     float64(min),
		Max:     float64(max),
		Step:    1,
		Record:  a.record,
		get:     func(r Records) any { return a.get(r) },
		set:     func(r Records, v any) { a.set(r, v.(int)) },
	}
}

func floatField(tab Tab, id, label, tip string, min, max, step float64, a accessor[float64]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindFloat,
		Min:     min,
		Max:     max,
		Step:    step,
		Record:  a.record,
		get:     func(r Records) any { return a.get(r) },
		set:     func(r Records, v any) { a.set(r, v.(float64)) },
	}
}

func choiceField(tab Tab, id, label, tip string, choices []string, a accessor[string]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindChoice,
		Choices: choices,
		Record:  a.record,
		get:     func(r Records) any { return a.get(r) },
		set:     func(r Records, v any) { a.set(r, v.(string)) },
	}
}

type enumValue interface {
	~int
	fmt.Stringer
}

func enumNames[E enumValue](values []E) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return names
}

// enumField offers an enum through its display names
func enumField[E enumValue](tab Tab, id, label, tip string, values []E, a accessor[E]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindChoice,
		Choices: enumNames(values),
		Record:  a.record,
		get:     func(r Records) any { return a.get(r).String() },
		set: func(r Records, v any) {
			name := v.(string)
			for _, e := range values {
				if e.String() == name {
					a.set(r, e)
					return
				}
			}
		},
	}
}

// listField binds a string list. The record's empty list keeps its nil or
// empty form through a load and commit.
func listField(tab Tab, id, label, tip string, a accessor[[]string]) Field {
	return Field{
		ID:      id,
		Tab:     tab,
		Label:   label,
		Tooltip: tip,
		Kind:    KindList,
		Record:  a.record,
		get:     func(r Records) any { return slices.Clone(a.get(r)) },
		set:     func(r Records, v any) { a.set(r, slices.Clone(v.([]string))) },
	}
}
