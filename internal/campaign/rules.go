package campaign

import (
	"maps"
	"strconv"
)

// GameRules is the rule engine's own option table. A few of its entries
// duplicate campaign options and are rewritten from them on every commit.
type GameRules map[string]string

// Rule keys mirrored from Options
const (
	RuleCommandInit          = "command_init"
	RuleIndividualInitiative = "individual_initiative"
	RuleToughness            = "toughness"
	RuleArtillerySkill       = "artillery_skill"
	RulePilotAdvantages      = "pilot_advantages"
	RuleEdge                 = "edge"
	RuleManeiDomini          = "manei_domini"
	RuleQuirks               = "stratops_quirks"
	RuleCanonOnly            = "canon_only"
	RuleTechLevel            = "techlevel"
	RuleEraBasedLimits       = "is_eq_limits"
)

// NewGameRules returns rules derived from default options
func NewGameRules() GameRules {
	return DeriveRules(NewDefaultOptions())
}

// DeriveRules computes the rule entries that mirror option fields
func DeriveRules(o *Options) GameRules {
	return GameRules{
		RuleCommandInit:          strconv.FormatBool(o.UseTactics),
		RuleIndividualInitiative: strconv.FormatBool(o.UseInitiativeBonus),
		RuleToughness:            strconv.FormatBool(o.UseToughness),
		RuleArtillerySkill:       strconv.FormatBool(o.UseArtillery),
		RulePilotAdvantages:      strconv.FormatBool(o.UseAbilities),
		RuleEdge:                 strconv.FormatBool(o.UseEdge),
		RuleManeiDomini:          strconv.FormatBool(o.UseImplants),
		RuleQuirks:               strconv.FormatBool(o.UseQuirks),
		RuleCanonOnly:            strconv.FormatBool(o.AllowCanonOnly),
		RuleTechLevel:            o.TechLevel.String(),
		RuleEraBasedLimits:       strconv.FormatBool(o.LimitByYear),
	}
}

// Merge returns a copy of r with every derived entry overwritten.
// Entries the options know nothing about are preserved.
func (r GameRules) Merge(derived GameRules) GameRules {
	out := r.Clone()
	if out == nil {
		out = make(GameRules, len(derived))
	}
	maps.Copy(out, derived)
	return out
}

// Clone returns a copy of the rule table
func (r GameRules) Clone() GameRules {
	return maps.Clone(r)
}

// Bool reads a rule as a boolean; missing or malformed entries are false
func (r GameRules) Bool(key string) bool {
	v, err := strconv.ParseBool(r[key])
	return err == nil && v
}
