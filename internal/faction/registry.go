package faction

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed factions.yaml
var defaultFactions []byte

// ErrNotFound is returned when a faction code is not registered
var ErrNotFound = errors.New("faction not found")

// maxSuggestDistance bounds how different a suggestion may be from the input
const maxSuggestDistance = 2

// Faction is a political entity a campaign can be run for
type Faction struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	StartYear int    `yaml:"start"`
	EndYear   int    `yaml:"end,omitempty"`
	Clan      bool   `yaml:"clan,omitempty"`
	Periphery bool   `yaml:"periphery,omitempty"`
}

// ShortName returns the faction code
func (f *Faction) ShortName() string {
	return f.Code
}

// ActiveIn reports whether the faction exists in the given year
func (f *Faction) ActiveIn(year int) bool {
	if year < f.StartYear {
		return false
	}
	return f.EndYear == 0 || year <= f.EndYear
}

// Registry holds every known faction keyed by code
type Registry struct {
	factions map[string]*Faction
}

// Load parses a faction document
func Load(data []byte) (*Registry, error) {
	var doc struct {
		Factions []Faction `yaml:"factions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse factions: %w", err)
	}

	r := &Registry{factions: make(map[string]*Faction, len(doc.Factions))}
	for i := range doc.Factions {
		f := doc.Factions[i]
		f.Code = strings.TrimSpace(f.Code)
		if f.Code == "" {
			return nil, fmt.Errorf("faction %d (%s) has no code", i, f.Name)
		}
		key := strings.ToUpper(f.Code)
		if _, dup := r.factions[key]; dup {
			return nil, fmt.Errorf("duplicate faction code %s", f.Code)
		}
		r.factions[key] = &f
	}
	return r, nil
}

// Default returns the built-in faction registry
func Default() *Registry {
	r, err := Load(defaultFactions)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds a faction by code, ignoring case
func (r *Registry) Lookup(code string) (*Faction, error) {
	f, ok := r.factions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return f, nil
}

// All returns every faction sorted by name
func (r *Registry) All() []*Faction {
	out := make([]*Faction, 0, len(r.factions))
	for _, f := range r.factions {
		out = append(out, f)
	}
	sortByName(out)
	return out
}

// Choosable returns the factions active in year, sorted by name
func (r *Registry) Choosable(year int) []*Faction {
	var out []*Faction
	for _, f := range r.factions {
		if f.ActiveIn(year) {
			out = append(out, f)
		}
	}
	sortByName(out)
	return out
}

// Suggest returns known codes close to an unknown one, nearest first
func (r *Registry) Suggest(code string) []string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}

	type candidate struct {
		code     string
		distance int
	}
	var candidates []candidate
	for key := range r.factions {
		d := levenshtein.ComputeDistance(code, key)
		if d <= maxSuggestDistance {
			candidates = append(candidates, candidate{code: r.factions[key].Code, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].code < candidates[j].code
	})

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.code
	}
	return out
}

func sortByName(list []*Faction) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.Slice(list, func(i, j int) bool {
		return c.CompareString(list[i].Name, list[j].Name) < 0
	})
}
