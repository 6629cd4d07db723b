package skills

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// NumLevels is the number of skill levels (0 through 10)
const NumLevels = 11

// ErrUnknownSkill is returned when a skill name is not in the table
var ErrUnknownSkill = errors.New("unknown skill")

// SkillType describes one skill and the XP needed to reach each level.
// A cost of -1 means the level cannot be reached.
type SkillType struct {
	Name    string
	Target  int
	CountUp bool
	Costs   [NumLevels]int
}

// Cost returns the XP cost to raise the skill to level, or -1
func (s *SkillType) Cost(level int) int {
	if level < 0 || level >= NumLevels {
		return -1
	}
	return s.Costs[level]
}

// Table is an ordered set of skill types
type Table struct {
	types []*SkillType
	index map[string]int
}

// NewTable builds a table; names must be unique
func NewTable(types ...SkillType) (*Table, error) {
	t := &Table{index: make(map[string]int, len(types))}
	for i := range types {
		if _, dup := t.index[types[i].Name]; dup {
			return nil, fmt.Errorf("duplicate skill %q", types[i].Name)
		}
		st := types[i]
		t.index[st.Name] = len(t.types)
		t.types = append(t.types, &st)
	}
	return t, nil
}

// Len returns the number of skill types
func (t *Table) Len() int {
	return len(t.types)
}

// Types returns copies of the skill types in table order
func (t *Table) Types() []SkillType {
	out := make([]SkillType, len(t.types))
	for i, st := range t.types {
		out[i] = *st
	}
	return out
}

// shortNames maps a unit-less skill name to its 'Mech variant
var shortNames = map[string]string{
	"Gunnery":  "Gunnery/Mech",
	"Piloting": "Piloting/Mech",
	"Tech":     "Tech/Mech",
}

// resolve finds a skill by its full name, then by its short name
func (t *Table) resolve(name string) (int, bool) {
	if i, ok := t.index[name]; ok {
		return i, true
	}
	full, ok := shortNames[name]
	if !ok {
		return 0, false
	}
	i, ok := t.index[full]
	return i, ok
}

// Lookup finds a skill type by name. "Gunnery", "Piloting" and "Tech"
// name the 'Mech skills unless the table has a skill called exactly that.
func (t *Table) Lookup(name string) (SkillType, bool) {
	i, ok := t.resolve(name)
	if !ok {
		return SkillType{}, false
	}
	return *t.types[i], true
}

// SetCosts replaces the cost table of one skill, accepting the same names
// as Lookup
func (t *Table) SetCosts(name string, costs [NumLevels]int) error {
	i, ok := t.resolve(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	t.types[i].Costs = costs
	return nil
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	c, _ := NewTable(t.Types()...)
	return c
}

// CostsArray renders the table as rows of XP costs, one column per level
func CostsArray(t *Table) [][]string {
	rows := make([][]string, len(t.types))
	for i, st := range t.types {
		row := make([]string, NumLevels)
		for level := 0; level < NumLevels; level++ {
			row[level] = strconv.Itoa(st.Cost(level))
		}
		rows[i] = row
	}
	return rows
}

type yamlSkillType struct {
	Name    string `yaml:"name"`
	Target  int    `yaml:"target"`
	CountUp bool   `yaml:"countUp,omitempty"`
	Costs   []int  `yaml:"costs,flow"`
}

// MarshalYAML encodes the table as a sequence of skill types
func (t *Table) MarshalYAML() (interface{}, error) {
	out := make([]yamlSkillType, len(t.types))
	for i, st := range t.types {
		out[i] = yamlSkillType{
			Name:    st.Name,
			Target:  st.Target,
			CountUp: st.CountUp,
			Costs:   st.Costs[:],
		}
	}
	return out, nil
}

// UnmarshalYAML decodes a sequence of skill types
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	var raw []yamlSkillType
	if err := value.Decode(&raw); err != nil {
		return err
	}

	types := make([]SkillType, len(raw))
	for i, r := range raw {
		costs, err := CostsFromSlice(r.Costs)
		if err != nil {
			return fmt.Errorf("skill %q: %w", r.Name, err)
		}
		types[i] = SkillType{Name: r.Name, Target: r.Target, CountUp: r.CountUp, Costs: costs}
	}

	built, err := NewTable(types...)
	if err != nil {
		return err
	}
	*t = *built
	return nil
}

// CostsFromSlice converts a decoded cost list into a fixed cost table
func CostsFromSlice(costs []int) ([NumLevels]int, error) {
	var out [NumLevels]int
	if len(costs) != NumLevels {
		return out, fmt.Errorf("expected %d costs, got %d", NumLevels, len(costs))
	}
	copy(out[:], costs)
	return out, nil
}

var (
	gunneryCosts  = [NumLevels]int{16, 8, 8, 8, 8, 8, 8, 8, 8, -1, -1}
	pilotingCosts = [NumLevels]int{8, 4, 4, 4, 4, 4, 4, 4, 4, -1, -1}
	supportCosts  = [NumLevels]int{8, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	commandCosts  = [NumLevels]int{12, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6}
	techCosts     = [NumLevels]int{12, 6, 0, 6, 6, 6, -1, -1, -1, -1, -1}
)

// DefaultTable returns the standard skill list
func DefaultTable() *Table {
	t, err := NewTable(
		SkillType{Name: "Piloting/Mech", Target: 8, Costs: pilotingCosts},
		SkillType{Name: "Gunnery/Mech", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Piloting/Aerospace", Target: 8, Costs: pilotingCosts},
		SkillType{Name: "Gunnery/Aerospace", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Piloting/Ground Vehicle", Target: 8, Costs: pilotingCosts},
		SkillType{Name: "Piloting/VTOL", Target: 8, Costs: pilotingCosts},
		SkillType{Name: "Gunnery/Vehicle", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Artillery", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Gunnery/Battlesuit", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Gunnery/ProtoMech", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Small Arms", Target: 7, Costs: gunneryCosts},
		SkillType{Name: "Anti-Mech", Target: 8, Costs: pilotingCosts},
		SkillType{Name: "Tech/Mech", Target: 10, Costs: techCosts},
		SkillType{Name: "Tech/Mechanic", Target: 10, Costs: techCosts},
		SkillType{Name: "Tech/Aero", Target: 10, Costs: techCosts},
		SkillType{Name: "Tech/BA", Target: 10, Costs: techCosts},
		SkillType{Name: "Astech", Target: 10, Costs: techCosts},
		SkillType{Name: "Doctor", Target: 11, Costs: techCosts},
		SkillType{Name: "Medtech", Target: 11, Costs: techCosts},
		SkillType{Name: "Hyperspace Navigation", Target: 8, Costs: supportCosts},
		SkillType{Name: "Administration", Target: 10, Costs: techCosts},
		SkillType{Name: "Negotiation", Target: 10, Costs: techCosts},
		SkillType{Name: "Scrounge", Target: 10, Costs: techCosts},
		SkillType{Name: "Leadership", CountUp: true, Costs: commandCosts},
		SkillType{Name: "Tactics", CountUp: true, Costs: commandCosts},
		SkillType{Name: "Strategy", CountUp: true, Costs: commandCosts},
	)
	if err != nil {
		panic(err)
	}
	return t
}
