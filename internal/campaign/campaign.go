package campaign

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"time"

	"jordanella.com/campaign-options/internal/skills"
)

// Camouflage identifies a camouflage pattern by category and file
type Camouflage struct {
	Category string
	Filename string
}

// IsDefault reports whether no camouflage has been chosen
func (c Camouflage) IsDefault() bool {
	return c.Filename == ""
}

func (c Camouflage) String() string {
	if c.IsDefault() {
		return "-- None --"
	}
	if c.Category == "" {
		return c.Filename
	}
	return c.Category + "/" + c.Filename
}

// UnitIcon identifies the force icon by category and file
type UnitIcon struct {
	Category string
	Filename string
}

// IsDefault reports whether no icon has been chosen
func (i UnitIcon) IsDefault() bool {
	return i.Filename == ""
}

func (i UnitIcon) String() string {
	if i.IsDefault() {
		return "-- None --"
	}
	if i.Category == "" {
		return i.Filename
	}
	return i.Category + "/" + i.Filename
}

// DefaultColour is the force colour used when none has been chosen
var DefaultColour = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// State is everything the options editor reads from and commits to a campaign
type State struct {
	Name             string
	FactionCode      string
	Date             time.Time
	Camouflage       Camouflage
	Colour           color.NRGBA
	UnitIcon         UnitIcon
	RankSystem       string
	Options          *Options
	SkillPreferences *RandomSkillPreferences
	Rules            GameRules
	Abilities        skills.AbilitySet
	SkillTable       *skills.Table
}

// Validate checks that the state is complete enough to be installed
func (s State) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("campaign name is empty"))
	}
	if s.Options == nil {
		errs = append(errs, errors.New("options record is missing"))
	}
	if s.SkillPreferences == nil {
		errs = append(errs, errors.New("skill preferences record is missing"))
	}
	if s.SkillTable == nil {
		errs = append(errs, errors.New("skill table is missing"))
	}
	return errors.Join(errs...)
}

// Campaign is one ongoing campaign session. The live records are swapped
// as a unit by Apply; readers always see either the old or the new state.
type Campaign struct {
	mu    sync.RWMutex
	id    int64
	state State
}

// New creates a campaign with default options
func New(name, factionCode string, date time.Time) *Campaign {
	return &Campaign{
		state: State{
			Name:             name,
			FactionCode:      factionCode,
			Date:             date,
			Colour:           DefaultColour,
			RankSystem:       DefaultRankSystem,
			Options:          NewDefaultOptions(),
			SkillPreferences: NewDefaultRandomSkillPreferences(),
			Rules:            NewGameRules(),
			Abilities:        skills.DefaultAbilities(),
			SkillTable:       skills.DefaultTable(),
		},
	}
}

// Restore creates a campaign from previously stored state
func Restore(id int64, s State) (*Campaign, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("restore campaign %d: %w", id, err)
	}
	if s.Rules == nil {
		s.Rules = DeriveRules(s.Options)
	}
	if s.Abilities == nil {
		s.Abilities = skills.DefaultAbilities()
	}
	return &Campaign{id: id, state: s}, nil
}

// ID returns the storage id, zero when never saved
func (c *Campaign) ID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// SetID records the storage id after the first save
func (c *Campaign) SetID(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

// State returns the current state. The records are shared with the
// campaign and must be cloned before being modified.
func (c *Campaign) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Name returns the campaign name
func (c *Campaign) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Name
}

// Date returns the current campaign date
func (c *Campaign) Date() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Date
}

// Options returns the live options record
func (c *Campaign) Options() *Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Options
}

// SkillPreferences returns the live random skill preferences
func (c *Campaign) SkillPreferences() *RandomSkillPreferences {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.SkillPreferences
}

// Rules returns the live rule engine options
func (c *Campaign) Rules() GameRules {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Rules
}

// Apply installs a complete new state in one step
func (c *Campaign) Apply(s State) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("apply campaign state: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	return nil
}

// DefaultRankSystem is the rank system assigned to new campaigns
const DefaultRankSystem = "SSLDF"

// RankSystems lists the selectable rank systems
var RankSystems = []string{
	"SSLDF", "AFFS", "AFFC", "LCAF", "DCMS", "CCAF", "FWLM", "CLAN", "MERC", "CUSTOM",
}
