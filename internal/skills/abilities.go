package skills

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownAbility is returned for ability names missing from a set
var ErrUnknownAbility = errors.New("unknown special ability")

// SpecialAbility is a personnel perk. Prerequisites must be owned before it
// can be bought, Invalid abilities cannot be owned alongside it, and Removes
// lists abilities it replaces when bought.
type SpecialAbility struct {
	Name          string   `yaml:"name"`
	DisplayName   string   `yaml:"displayName"`
	Description   string   `yaml:"description,omitempty"`
	XPCost        int      `yaml:"xpCost"`
	Prerequisites []string `yaml:"prerequisites,omitempty"`
	Invalid       []string `yaml:"invalid,omitempty"`
	Removes       []string `yaml:"removes,omitempty"`
}

// Clone returns a deep copy
func (a *SpecialAbility) Clone() *SpecialAbility {
	c := *a
	c.Prerequisites = slices.Clone(a.Prerequisites)
	c.Invalid = slices.Clone(a.Invalid)
	c.Removes = slices.Clone(a.Removes)
	return &c
}

// AbilitySet maps ability names to their definitions
type AbilitySet map[string]*SpecialAbility

// NewAbilitySet builds a set from a list of abilities
func NewAbilitySet(list ...SpecialAbility) AbilitySet {
	s := make(AbilitySet, len(list))
	for i := range list {
		a := list[i]
		s[a.Name] = a.Clone()
	}
	return s
}

// Clone returns a deep copy of the set
func (s AbilitySet) Clone() AbilitySet {
	if s == nil {
		return nil
	}
	c := make(AbilitySet, len(s))
	for name, a := range s {
		c[name] = a.Clone()
	}
	return c
}

// Names returns ability names in sorted order
func (s AbilitySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns copies of the abilities sorted by name
func (s AbilitySet) List() []SpecialAbility {
	out := make([]SpecialAbility, 0, len(s))
	for _, name := range s.Names() {
		out = append(out, *s[name].Clone())
	}
	return out
}

// SetXPCost updates the XP cost of one ability
func (s AbilitySet) SetXPCost(name string, cost int) error {
	a, ok := s[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAbility, name)
	}
	if cost < 0 {
		return fmt.Errorf("ability %s: negative xp cost %d", name, cost)
	}
	a.XPCost = cost
	return nil
}

// Validate checks that every referenced ability exists and that no ability
// both requires and excludes the same ability
func (s AbilitySet) Validate() error {
	var errs []error
	for _, name := range s.Names() {
		a := s[name]
		if a.Name != name {
			errs = append(errs, fmt.Errorf("ability %s: stored under name %s", a.Name, name))
		}
		for _, ref := range slices.Concat(a.Prerequisites, a.Invalid, a.Removes) {
			if _, ok := s[ref]; !ok {
				errs = append(errs, fmt.Errorf("ability %s: %w: %s", name, ErrUnknownAbility, ref))
			}
		}
		for _, pre := range a.Prerequisites {
			if slices.Contains(a.Invalid, pre) {
				errs = append(errs, fmt.Errorf("ability %s: %s is both required and invalid", name, pre))
			}
		}
	}
	return errors.Join(errs...)
}

// DefaultAbilities returns the standard special ability set
func DefaultAbilities() AbilitySet {
	return NewAbilitySet(
		SpecialAbility{Name: "hot_dog", DisplayName: "Hot Dog", XPCost: 30,
			Description: "+1 to shutdown avoidance rolls"},
		SpecialAbility{Name: "jumping_jack", DisplayName: "Jumping Jack", XPCost: 40,
			Description: "Reduces the to-hit penalty for jumping"},
		SpecialAbility{Name: "melee_specialist", DisplayName: "Melee Specialist", XPCost: 40,
			Description: "-1 to hit and +1 damage with physical attacks"},
		SpecialAbility{Name: "melee_master", DisplayName: "Melee Master", XPCost: 60,
			Description:   "One extra physical attack per turn",
			Prerequisites: []string{"melee_specialist"}, Removes: []string{"melee_specialist"}},
		SpecialAbility{Name: "multi_tasker", DisplayName: "Multi-Tasker", XPCost: 40,
			Description: "Reduced penalty for secondary targets"},
		SpecialAbility{Name: "sniper", DisplayName: "Sniper", XPCost: 60,
			Description: "Range modifiers are halved"},
		SpecialAbility{Name: "weapon_specialist", DisplayName: "Weapon Specialist", XPCost: 40,
			Description: "-2 to hit with one chosen weapon type",
			Invalid:     []string{"gunnery_specialist"}},
		SpecialAbility{Name: "gunnery_specialist", DisplayName: "Gunnery Specialist", XPCost: 40,
			Description: "-1 to hit with one weapon class, +1 with the others",
			Invalid:     []string{"weapon_specialist"}},
		SpecialAbility{Name: "dodge_maneuver", DisplayName: "Dodge", XPCost: 40,
			Description: "May dodge physical attacks"},
		SpecialAbility{Name: "iron_man", DisplayName: "Iron Man", XPCost: 40,
			Description: "-2 to consciousness rolls"},
		SpecialAbility{Name: "tactical_genius", DisplayName: "Tactical Genius", XPCost: 50,
			Description: "May reroll initiative once per game"},
	)
}
