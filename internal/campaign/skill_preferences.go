package campaign

import (
	"maps"
	"reflect"
)

// RandomSkillPreferences holds the dice modifiers used when generating
// skills for new recruits
type RandomSkillPreferences struct {
	OverallRecruitBonus   int
	RecruitBonuses        map[PersonnelRole]int
	RandomizeSkill        bool
	UseClanBonuses        bool
	AntiMekProb           int
	ArtilleryProb         int
	ArtilleryBonus        int
	SecondSkillProb       int
	SecondSkillBonus      int
	TacticsModifiers      [4]int // indexed by ExperienceTiers
	CombatSmallArmsBonus  int
	SupportSmallArmsBonus int
	SpecialAbilityBonus   [4]int // indexed by ExperienceTiers
}

// NewDefaultRandomSkillPreferences creates preferences with default values
func NewDefaultRandomSkillPreferences() *RandomSkillPreferences {
	p := &RandomSkillPreferences{
		RecruitBonuses:        make(map[PersonnelRole]int, NumPersonnelRoles),
		RandomizeSkill:        true,
		UseClanBonuses:        true,
		AntiMekProb:           10,
		ArtilleryProb:         10,
		ArtilleryBonus:        -2,
		SecondSkillProb:       0,
		SecondSkillBonus:      -4,
		TacticsModifiers:      [4]int{-10, -10, -7, -4},
		CombatSmallArmsBonus:  -4,
		SupportSmallArmsBonus: -10,
		SpecialAbilityBonus:   [4]int{-10, -10, -2, 0},
	}
	for _, role := range PersonnelRoles {
		p.RecruitBonuses[role] = 0
	}
	return p
}

// Clone returns a deep copy
func (p *RandomSkillPreferences) Clone() *RandomSkillPreferences {
	if p == nil {
		return nil
	}
	c := *p
	c.RecruitBonuses = maps.Clone(p.RecruitBonuses)
	return &c
}

// Equal reports whether both records hold the same values
func (p *RandomSkillPreferences) Equal(other *RandomSkillPreferences) bool {
	return reflect.DeepEqual(p, other)
}
