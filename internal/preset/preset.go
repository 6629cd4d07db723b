// Package preset reads and writes campaign presets: named bundles of
// options, skill preferences, special abilities and skill costs that can
// be applied to a campaign in one step.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"jordanella.com/campaign-options/internal/skills"
)

// Preset is one preset document. Options and SkillPreferences map field
// ids to their text values; fields left out keep their defaults.
type Preset struct {
	Title            string                  `yaml:"title"`
	Description      string                  `yaml:"description,omitempty"`
	Faction          string                  `yaml:"faction,omitempty"`
	RankSystem       string                  `yaml:"rankSystem,omitempty"`
	Options          map[string]string       `yaml:"options,omitempty"`
	SkillPreferences map[string]string       `yaml:"skillPreferences,omitempty"`
	SpecialAbilities []skills.SpecialAbility `yaml:"specialAbilities,omitempty"`
	SkillCosts       map[string][]int        `yaml:"skillCosts,omitempty"`

	path string
}

// Path returns the file the preset was loaded from, if any
func (p *Preset) Path() string {
	return p.path
}

// Validate checks the parts of a preset that do not depend on a campaign
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("preset has no title")
	}
	for name, costs := range p.SkillCosts {
		if _, err := skills.CostsFromSlice(costs); err != nil {
			return fmt.Errorf("preset %q skill %q: %w", p.Title, name, err)
		}
	}
	if len(p.SpecialAbilities) > 0 {
		if err := skills.NewAbilitySet(p.SpecialAbilities...).Validate(); err != nil {
			return fmt.Errorf("preset %q abilities: %w", p.Title, err)
		}
	}
	return nil
}

// Parse decodes and validates a preset document
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads one preset file
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// Save writes the preset as YAML
func (p *Preset) Save(path string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file %s: %w", path, err)
	}
	p.path = path
	return nil
}

// LoadDir loads every .yaml and .yml file in dir, sorted by title.
// A missing directory yields no presets.
func LoadDir(dir string) ([]*Preset, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory %s: %w", dir, err)
	}

	var presets []*Preset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	sort.SliceStable(presets, func(i, j int) bool {
		return strings.ToLower(presets[i].Title) < strings.ToLower(presets[j].Title)
	})
	return presets, nil
}

// FileName suggests a file name for a preset title
func FileName(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "preset.yaml"
	}
	return b.String() + ".yaml"
}
