package options

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"strings"
	"time"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/faction"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/preset"
	"jordanella.com/campaign-options/internal/skills"
)

// ErrNotOpen is returned when the editor has no campaign loaded
var ErrNotOpen = errors.New("no campaign open in the editor")

// Editor is the non-visual core of the campaign options pane. It owns the
// working form plus the campaign level values staged alongside it, and
// commits everything to the campaign in one swap.
//
// An Editor is not safe for concurrent use; drive it from the UI goroutine.
type Editor struct {
	schema   *Schema
	form     *Form
	factions *faction.Registry
	bus      events.EventBus
	logger   *logging.Logger

	campaign    *campaign.Campaign
	name        string
	factionCode string
	date        time.Time
	camouflage  campaign.Camouflage
	colour      color.NRGBA
	unitIcon    campaign.UnitIcon
	rankSystem  string
	tempSPA     skills.AbilitySet
	skillTable  *skills.Table
}

// NewEditor creates an editor over the default schema. bus may be nil.
func NewEditor(factions *faction.Registry, bus events.EventBus, logger *logging.Logger) *Editor {
	if factions == nil {
		factions = faction.Default()
	}
	if logger == nil {
		logger = logging.NewLogger("Editor")
	}
	schema := DefaultSchema()
	return &Editor{
		schema:     schema,
		form:       NewForm(schema),
		factions:   factions,
		bus:        bus,
		logger:     logger,
		colour:     campaign.DefaultColour,
		rankSystem: campaign.DefaultRankSystem,
		tempSPA:    skills.DefaultAbilities(),
		skillTable: skills.DefaultTable(),
	}
}

// Schema returns the binding table
func (e *Editor) Schema() *Schema { return e.schema }

// Form returns the working form
func (e *Editor) Form() *Form { return e.form }

// Factions returns the faction registry used for validation
func (e *Editor) Factions() *faction.Registry { return e.factions }

// Campaign returns the open campaign, nil before Open
func (e *Editor) Campaign() *campaign.Campaign { return e.campaign }

// Open loads everything the editor shows from the campaign
func (e *Editor) Open(c *campaign.Campaign) error {
	st := c.State()
	if err := e.form.Load(Records{Options: st.Options, Skills: st.SkillPreferences}); err != nil {
		return fmt.Errorf("open campaign %q: %w", st.Name, err)
	}

	e.campaign = c
	e.name = st.Name
	e.factionCode = st.FactionCode
	e.date = st.Date
	e.camouflage = st.Camouflage
	e.colour = st.Colour
	e.unitIcon = st.UnitIcon
	e.rankSystem = st.RankSystem
	e.tempSPA = st.Abilities.Clone()
	if e.tempSPA == nil {
		e.tempSPA = skills.DefaultAbilities()
	}
	e.skillTable = st.SkillTable.Clone()

	e.logger.InfoWithContext("Opened campaign options", map[string]interface{}{
		"campaign": st.Name,
		"faction":  st.FactionCode,
	})
	return nil
}

// Reload discards every pending edit
func (e *Editor) Reload() error {
	if e.campaign == nil {
		return ErrNotOpen
	}
	return e.Open(e.campaign)
}

// Name returns the working campaign name
func (e *Editor) Name() string { return e.name }

// SetName changes the working campaign name
func (e *Editor) SetName(name string) { e.name = name }

// FactionCode returns the working faction code
func (e *Editor) FactionCode() string { return e.factionCode }

// SetFactionCode changes the faction code. Unknown codes fail validation
// at commit.
func (e *Editor) SetFactionCode(code string) { e.factionCode = code }

// Date returns the working campaign date
func (e *Editor) Date() time.Time { return e.date }

// SetDate changes the working campaign date
func (e *Editor) SetDate(d time.Time) { e.date = d }

// Camouflage returns the working camouflage selection
func (e *Editor) Camouflage() campaign.Camouflage { return e.camouflage }

// SetCamouflage changes the camouflage selection
func (e *Editor) SetCamouflage(c campaign.Camouflage) { e.camouflage = c }

// UnitIcon returns the working unit icon
func (e *Editor) UnitIcon() campaign.UnitIcon { return e.unitIcon }

// SetUnitIcon changes the unit icon
func (e *Editor) SetUnitIcon(i campaign.UnitIcon) { e.unitIcon = i }

// Colour returns the working unit colour
func (e *Editor) Colour() color.NRGBA { return e.colour }

// RankSystem returns the working rank system code
func (e *Editor) RankSystem() string { return e.rankSystem }

// SetColour stores any colour as non-premultiplied RGBA
func (e *Editor) SetColour(c color.Color) {
	e.colour = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetRankSystem selects the rank system by code
func (e *Editor) SetRankSystem(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("rank system code is blank")
	}
	e.rankSystem = code
	return nil
}

// Faction resolves the selected faction code
func (e *Editor) Faction() (*faction.Faction, error) {
	return e.factions.Lookup(e.factionCode)
}

// Abilities returns the working special abilities sorted by name
func (e *Editor) Abilities() []skills.SpecialAbility {
	return e.tempSPA.List()
}

// SetAbilityXPCost edits the working copy of one special ability
func (e *Editor) SetAbilityXPCost(name string, cost int) error {
	return e.tempSPA.SetXPCost(name, cost)
}

// SkillTable returns the working skill table
func (e *Editor) SkillTable() *skills.Table { return e.skillTable }

// SetSkillCosts edits the working copy of one skill's XP costs
func (e *Editor) SetSkillCosts(name string, costs [skills.NumLevels]int) error {
	return e.skillTable.SetCosts(name, costs)
}

// SkillCostsArray renders the working skill table as text, one row per
// skill and one column per level
func (e *Editor) SkillCostsArray() [][]string {
	return skills.CostsArray(e.skillTable)
}

// Validate checks the campaign level fields. An unknown faction code gets
// a suggestion of the nearest known codes.
func (e *Editor) Validate() Result {
	f, err := e.factions.Lookup(e.factionCode)
	if err != nil {
		f = nil
	}
	res := Validate(e.name, f)
	if res.Status == StatusFailure && f == nil && strings.TrimSpace(e.name) != "" && strings.TrimSpace(e.factionCode) != "" {
		if near := e.factions.Suggest(e.factionCode); len(near) > 0 {
			res.Messages = append(res.Messages,
				fmt.Sprintf("Unknown faction code %q. Did you mean %s?", e.factionCode, strings.Join(near, " or ")))
		}
	}
	return res
}

// LoadRecords shows imported records in the form without committing them
func (e *Editor) LoadRecords(r Records) error {
	if e.campaign == nil {
		return ErrNotOpen
	}
	return e.form.Load(r)
}

// Staged returns copies of the records as they would be committed
func (e *Editor) Staged() (Records, error) {
	return e.form.Commit()
}

// ApplyPreset overrides the working state with a preset. Everything is
// checked before anything changes; a bad preset leaves the editor as it was.
func (e *Editor) ApplyPreset(p *preset.Preset) error {
	if e.campaign == nil {
		return ErrNotOpen
	}
	if err := p.Validate(); err != nil {
		return err
	}

	var staged Records
	if len(p.Options) > 0 {
		staged.Options = campaign.NewDefaultOptions()
		unknown, err := e.schema.ImportMap(Records{Options: staged.Options}, p.Options)
		if err != nil {
			return fmt.Errorf("preset %q: %w", p.Title, err)
		}
		e.warnUnknown(p.Title, unknown)
	}
	if len(p.SkillPreferences) > 0 {
		staged.Skills = campaign.NewDefaultRandomSkillPreferences()
		unknown, err := e.schema.ImportMap(Records{Skills: staged.Skills}, p.SkillPreferences)
		if err != nil {
			return fmt.Errorf("preset %q: %w", p.Title, err)
		}
		e.warnUnknown(p.Title, unknown)
	}

	table := e.skillTable.Clone()
	names := make([]string, 0, len(p.SkillCosts))
	for name := range p.SkillCosts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		costs, err := skills.CostsFromSlice(p.SkillCosts[name])
		if err != nil {
			return fmt.Errorf("preset %q skill %q: %w", p.Title, name, err)
		}
		if err := table.SetCosts(name, costs); err != nil {
			return fmt.Errorf("preset %q: %w", p.Title, err)
		}
	}

	if staged.Options != nil || staged.Skills != nil {
		if err := e.form.Load(staged); err != nil {
			return fmt.Errorf("preset %q: %w", p.Title, err)
		}
	}
	if p.Faction != "" {
		e.factionCode = p.Faction
	}
	if p.RankSystem != "" {
		e.rankSystem = p.RankSystem
	}
	if len(p.SpecialAbilities) > 0 {
		e.tempSPA = skills.NewAbilitySet(p.SpecialAbilities...)
	}
	e.skillTable = table

	e.logger.InfoWithContext("Applied preset", map[string]interface{}{
		"preset":      p.Title,
		"skill_costs": len(p.SkillCosts),
	})
	e.publish(events.NewPresetAppliedEvent(p.Title))
	return nil
}

func (e *Editor) warnUnknown(title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	e.logger.WarnWithContext("Preset names unknown option fields", map[string]interface{}{
		"preset": title,
		"fields": strings.Join(ids, ","),
	})
}

// SavePreset captures the working state as a preset
func (e *Editor) SavePreset(title, description string) (*preset.Preset, error) {
	staged, err := e.form.Commit()
	if err != nil {
		return nil, err
	}
	p := &preset.Preset{
		Title:            title,
		Description:      description,
		Faction:          e.factionCode,
		RankSystem:       e.rankSystem,
		Options:          e.schema.ExportMap(Records{Options: staged.Options}),
		SkillPreferences: e.schema.ExportMap(Records{Skills: staged.Skills}),
		SpecialAbilities: e.tempSPA.List(),
		SkillCosts:       make(map[string][]int, e.skillTable.Len()),
	}
	for _, st := range e.skillTable.Types() {
		p.SkillCosts[st.Name] = append([]int(nil), st.Costs[:]...)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Commit validates, stages every record into fresh copies and swaps them
// into the campaign in one step. On success exactly one options changed
// event is published. On any failure the campaign is left untouched.
func (e *Editor) Commit() error {
	if e.campaign == nil {
		return ErrNotOpen
	}

	if res := e.Validate(); !res.OK() {
		err := &ValidationError{Result: res}
		e.logger.WarnWithContext("Commit blocked by validation", map[string]interface{}{
			"messages": strings.Join(res.Messages, "; "),
		})
		return err
	}
	f, err := e.factions.Lookup(e.factionCode)
	if err != nil {
		return e.fail(err)
	}

	staged, err := e.form.Commit()
	if err != nil {
		return e.fail(err)
	}
	if err := e.tempSPA.Validate(); err != nil {
		return e.fail(fmt.Errorf("special abilities: %w", err))
	}

	prev := e.campaign.State()
	next := campaign.State{
		Name:             strings.TrimSpace(e.name),
		FactionCode:      f.Code,
		Date:             e.date,
		Camouflage:       e.camouflage,
		Colour:           e.colour,
		UnitIcon:         e.unitIcon,
		RankSystem:       e.rankSystem,
		Options:          staged.Options,
		SkillPreferences: staged.Skills,
		Rules:            prev.Rules.Merge(campaign.DeriveRules(staged.Options)),
		Abilities:        e.tempSPA.Clone(),
		SkillTable:       e.skillTable.Clone(),
	}
	if err := e.campaign.Apply(next); err != nil {
		return e.fail(err)
	}

	changed := e.changedFields(prev, next)
	if err := e.form.Load(staged); err != nil {
		e.logger.Error("Failed to reload committed options", err)
	}
	e.name = next.Name
	e.factionCode = next.FactionCode

	e.logger.InfoWithContext("Committed campaign options", map[string]interface{}{
		"campaign": next.Name,
		"changed":  len(changed),
	})
	e.publish(events.NewOptionsChangedEvent(next.Name, changed))
	return nil
}

func (e *Editor) fail(err error) error {
	e.logger.Error("Commit failed", err)
	e.publish(events.NewCommitFailedEvent(e.name, err))
	return err
}

// changedFields lists every option field and campaign value that differs
// between two states
func (e *Editor) changedFields(prev, next campaign.State) []string {
	before := e.schema.ExportMap(Records{Options: prev.Options, Skills: prev.SkillPreferences})
	after := e.schema.ExportMap(Records{Options: next.Options, Skills: next.SkillPreferences})

	var changed []string
	for _, f := range e.schema.fields {
		if !f.Derived && before[f.ID] != after[f.ID] {
			changed = append(changed, f.ID)
		}
	}

	add := func(id string, differs bool) {
		if differs {
			changed = append(changed, id)
		}
	}
	add("name", prev.Name != next.Name)
	add("faction", prev.FactionCode != next.FactionCode)
	add("date", !prev.Date.Equal(next.Date))
	add("camouflage", prev.Camouflage != next.Camouflage)
	add("colour", prev.Colour != next.Colour)
	add("unitIcon", prev.UnitIcon != next.UnitIcon)
	add("rankSystem", prev.RankSystem != next.RankSystem)
	add("specialAbilities", !reflect.DeepEqual(prev.Abilities, next.Abilities))
	add("skillCosts", !reflect.DeepEqual(skills.CostsArray(prev.SkillTable), skills.CostsArray(next.SkillTable)))
	return changed
}

func (e *Editor) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
