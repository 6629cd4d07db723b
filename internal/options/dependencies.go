package options

import (
	"fmt"
	"slices"
)

// Predicate decides from a control's value whether its dependents are enabled
type Predicate func(v any) bool

// IsTrue enables dependents while a checkbox is ticked
func IsTrue(v any) bool {
	b, _ := v.(bool)
	return b
}

// IsFalse enables dependents while a checkbox is clear
func IsFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

// Equals enables dependents while a choice equals want
func Equals(want string) Predicate {
	return func(v any) bool {
		s, _ := v.(string)
		return s == want
	}
}

// NotEquals enables dependents while a choice differs from want
func NotEquals(want string) Predicate {
	return func(v any) bool {
		s, _ := v.(string)
		return s != want
	}
}

// Dependency enables a group of fields while a control satisfies a predicate
type Dependency struct {
	Control    string
	When       Predicate
	Dependents []string
}

type gate struct {
	control string
	when    Predicate
}

// Dependencies is the validated, acyclic enablement graph
type Dependencies struct {
	gates      map[string][]gate
	dependents map[string][]string
}

func newDependencies(list []Dependency, known func(string) bool) (*Dependencies, error) {
	d := &Dependencies{
		gates:      make(map[string][]gate),
		dependents: make(map[string][]string),
	}
	for _, dep := range list {
		if !known(dep.Control) {
			return nil, fmt.Errorf("%w: dependency control %s", ErrUnknownField, dep.Control)
		}
		if dep.When == nil {
			return nil, fmt.Errorf("dependency on %s has no predicate", dep.Control)
		}
		for _, id := range dep.Dependents {
			if !known(id) {
				return nil, fmt.Errorf("%w: dependent %s of %s", ErrUnknownField, id, dep.Control)
			}
			d.gates[id] = append(d.gates[id], gate{control: dep.Control, when: dep.When})
			if !slices.Contains(d.dependents[dep.Control], id) {
				d.dependents[dep.Control] = append(d.dependents[dep.Control], id)
			}
		}
	}
	if err := d.checkAcyclic(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dependencies) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("dependency cycle through %s", id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, next := range d.dependents[id] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	controls := make([]string, 0, len(d.dependents))
	for id := range d.dependents {
		controls = append(controls, id)
	}
	slices.Sort(controls)
	for _, id := range controls {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// DependentsOf returns the fields a control directly gates
func (d *Dependencies) DependentsOf(control string) []string {
	return slices.Clone(d.dependents[control])
}

// Affected returns every field whose enablement can change when control
// changes, following the graph transitively
func (d *Dependencies) Affected(control string) []string {
	var out []string
	seen := map[string]bool{control: true}
	queue := []string{control}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range d.dependents[id] {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
				queue = append(queue, next)
			}
		}
	}
	return out
}

// Evaluate computes enablement of every gated field. A field is enabled
// only when each of its controls is itself enabled and satisfies its
// predicate. Fields missing from the result are always enabled.
func (d *Dependencies) Evaluate(value func(id string) any) map[string]bool {
	enabled := make(map[string]bool, len(d.gates))

	var resolve func(id string) bool
	resolve = func(id string) bool {
		if v, ok := enabled[id]; ok {
			return v
		}
		gates, ok := d.gates[id]
		if !ok {
			return true
		}
		result := true
		for _, g := range gates {
			if !resolve(g.control) || !g.when(value(g.control)) {
				result = false
				break
			}
		}
		enabled[id] = result
		return result
	}

	for id := range d.gates {
		resolve(id)
	}
	return enabled
}
