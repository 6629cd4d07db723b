package campaign

import (
	"fmt"
	"strings"
)

// SkillLevel is the experience rating of a unit or person
type SkillLevel int

const (
	SkillLevelNone SkillLevel = iota
	SkillLevelUltraGreen
	SkillLevelGreen
	SkillLevelRegular
	SkillLevelVeteran
	SkillLevelElite
	SkillLevelHeroic
	SkillLevelLegendary
)

var skillLevelNames = []string{
	"None", "Ultra-Green", "Green", "Regular", "Veteran", "Elite", "Heroic", "Legendary",
}

func (s SkillLevel) String() string {
	if s < 0 || int(s) >= len(skillLevelNames) {
		return "Unknown"
	}
	return skillLevelNames[s]
}

// SkillLevels lists every rated level (None excluded)
var SkillLevels = []SkillLevel{
	SkillLevelUltraGreen, SkillLevelGreen, SkillLevelRegular, SkillLevelVeteran,
	SkillLevelElite, SkillLevelHeroic, SkillLevelLegendary,
}

// ExperienceTiers are the four levels used by the per-tier bonus arrays
var ExperienceTiers = [4]SkillLevel{
	SkillLevelGreen, SkillLevelRegular, SkillLevelVeteran, SkillLevelElite,
}

// ParseSkillLevel converts a display name back to a SkillLevel
func ParseSkillLevel(s string) (SkillLevel, error) {
	for i, name := range skillLevelNames {
		if strings.EqualFold(name, s) {
			return SkillLevel(i), nil
		}
	}
	return SkillLevelNone, fmt.Errorf("unknown skill level %q", s)
}

// CombatRole is the role a lance is assigned to on a contract.
// The order matches the four battle chance slots.
type CombatRole int

const (
	CombatRoleFighting CombatRole = iota
	CombatRoleDefence
	CombatRoleScouting
	CombatRoleTraining
)

// CombatRoles lists the roles in battle chance order
var CombatRoles = [4]CombatRole{
	CombatRoleFighting, CombatRoleDefence, CombatRoleScouting, CombatRoleTraining,
}

func (r CombatRole) String() string {
	switch r {
	case CombatRoleFighting:
		return "Fighting"
	case CombatRoleDefence:
		return "Defence"
	case CombatRoleScouting:
		return "Scouting"
	case CombatRoleTraining:
		return "Training"
	default:
		return "Unknown"
	}
}

// UnitRatingMethod selects how the dragoons-style unit rating is computed
type UnitRatingMethod int

const (
	UnitRatingNone UnitRatingMethod = iota
	UnitRatingFlat
	UnitRatingCampaignOps
)

func (m UnitRatingMethod) String() string {
	switch m {
	case UnitRatingNone:
		return "None"
	case UnitRatingFlat:
		return "Flat"
	case UnitRatingCampaignOps:
		return "Campaign Operations"
	default:
		return "Unknown"
	}
}

// UnitRatingMethods lists every rating method
var UnitRatingMethods = []UnitRatingMethod{UnitRatingNone, UnitRatingFlat, UnitRatingCampaignOps}

// TechLevel caps the rules level of purchasable equipment
type TechLevel int

const (
	TechLevelIntroductory TechLevel = iota
	TechLevelStandard
	TechLevelAdvanced
	TechLevelExperimental
	TechLevelUnofficial
)

func (t TechLevel) String() string {
	switch t {
	case TechLevelIntroductory:
		return "Introductory"
	case TechLevelStandard:
		return "Standard"
	case TechLevelAdvanced:
		return "Advanced"
	case TechLevelExperimental:
		return "Experimental"
	case TechLevelUnofficial:
		return "Unofficial"
	default:
		return "Unknown"
	}
}

// TechLevels lists tech levels from most to least restrictive
var TechLevels = []TechLevel{
	TechLevelIntroductory, TechLevelStandard, TechLevelAdvanced,
	TechLevelExperimental, TechLevelUnofficial,
}

// FinancialYearDuration controls how often the books are closed
type FinancialYearDuration int

const (
	FinancialYearSemiannual FinancialYearDuration = iota
	FinancialYearAnnual
	FinancialYearBiannual
	FinancialYearQuadrennial
	FinancialYearDecennial
	FinancialYearForever
)

func (d FinancialYearDuration) String() string {
	switch d {
	case FinancialYearSemiannual:
		return "Semiannual"
	case FinancialYearAnnual:
		return "Annual"
	case FinancialYearBiannual:
		return "Biannual"
	case FinancialYearQuadrennial:
		return "Quadrennial"
	case FinancialYearDecennial:
		return "Decennial"
	case FinancialYearForever:
		return "Forever"
	default:
		return "Unknown"
	}
}

// FinancialYearDurations lists the durations shortest first
var FinancialYearDurations = []FinancialYearDuration{
	FinancialYearSemiannual, FinancialYearAnnual, FinancialYearBiannual,
	FinancialYearQuadrennial, FinancialYearDecennial, FinancialYearForever,
}

// PersonnelMarketMethod selects the personnel market generator
type PersonnelMarketMethod int

const (
	PersonnelMarketRandom PersonnelMarketMethod = iota
	PersonnelMarketDylan
	PersonnelMarketFixed
	PersonnelMarketAtB
	PersonnelMarketCampaignOps
)

func (m PersonnelMarketMethod) String() string {
	switch m {
	case PersonnelMarketRandom:
		return "Random"
	case PersonnelMarketDylan:
		return "Dylan's Method"
	case PersonnelMarketFixed:
		return "Strat Ops"
	case PersonnelMarketAtB:
		return "Against the Bot"
	case PersonnelMarketCampaignOps:
		return "Campaign Ops"
	default:
		return "Unknown"
	}
}

// PersonnelMarketMethods lists every personnel market generator
var PersonnelMarketMethods = []PersonnelMarketMethod{
	PersonnelMarketRandom, PersonnelMarketDylan, PersonnelMarketFixed,
	PersonnelMarketAtB, PersonnelMarketCampaignOps,
}

// UnitMarketMethod selects the unit market generator
type UnitMarketMethod int

const (
	UnitMarketNone UnitMarketMethod = iota
	UnitMarketAtBMonthly
)

func (m UnitMarketMethod) String() string {
	switch m {
	case UnitMarketNone:
		return "None"
	case UnitMarketAtBMonthly:
		return "AtB Monthly"
	default:
		return "Unknown"
	}
}

// UnitMarketMethods lists every unit market generator
var UnitMarketMethods = []UnitMarketMethod{UnitMarketNone, UnitMarketAtBMonthly}

// ContractMarketMethod selects the contract market generator
type ContractMarketMethod int

const (
	ContractMarketNone ContractMarketMethod = iota
	ContractMarketAtBMonthly
)

func (m ContractMarketMethod) String() string {
	switch m {
	case ContractMarketNone:
		return "None"
	case ContractMarketAtBMonthly:
		return "AtB Monthly"
	default:
		return "Unknown"
	}
}

// ContractMarketMethods lists every contract market generator
var ContractMarketMethods = []ContractMarketMethod{ContractMarketNone, ContractMarketAtBMonthly}

// AgeGroup buckets personnel for random death rolls
type AgeGroup int

const (
	AgeGroupElder AgeGroup = iota
	AgeGroupAdult
	AgeGroupTeenager
	AgeGroupPreteen
	AgeGroupChild
	AgeGroupToddler
	AgeGroupBaby
)

func (a AgeGroup) String() string {
	switch a {
	case AgeGroupElder:
		return "Elder"
	case AgeGroupAdult:
		return "Adult"
	case AgeGroupTeenager:
		return "Teenager"
	case AgeGroupPreteen:
		return "Preteen"
	case AgeGroupChild:
		return "Child"
	case AgeGroupToddler:
		return "Toddler"
	case AgeGroupBaby:
		return "Baby"
	default:
		return "Unknown"
	}
}

// AgeGroups lists every age group oldest first
var AgeGroups = []AgeGroup{
	AgeGroupElder, AgeGroupAdult, AgeGroupTeenager, AgeGroupPreteen,
	AgeGroupChild, AgeGroupToddler, AgeGroupBaby,
}

// SurnameStyle is how surnames change on marriage
type SurnameStyle int

const (
	SurnameNoChange SurnameStyle = iota
	SurnameYours
	SurnameSpouse
	SurnameHyphenYours
	SurnameHyphenSpouse
	SurnameMale
	SurnameFemale
)

func (s SurnameStyle) String() string {
	switch s {
	case SurnameNoChange:
		return "No Change"
	case SurnameYours:
		return "Yours"
	case SurnameSpouse:
		return "Spouse"
	case SurnameHyphenYours:
		return "Hyphen Yours"
	case SurnameHyphenSpouse:
		return "Hyphen Spouse"
	case SurnameMale:
		return "Male"
	case SurnameFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// SurnameStyles lists every surname style
var SurnameStyles = []SurnameStyle{
	SurnameNoChange, SurnameYours, SurnameSpouse, SurnameHyphenYours,
	SurnameHyphenSpouse, SurnameMale, SurnameFemale,
}

// PersonnelRole is a primary personnel role
type PersonnelRole int

const (
	RoleMechWarrior PersonnelRole = iota
	RoleAerospacePilot
	RoleVehicleCrew
	RoleSoldier
	RoleBattleArmour
	RoleTech
	RoleDoctor
	RoleAdministrator
)

// NumPersonnelRoles sizes the per-role arrays
const NumPersonnelRoles = 8

func (r PersonnelRole) String() string {
	switch r {
	case RoleMechWarrior:
		return "MechWarrior"
	case RoleAerospacePilot:
		return "Aerospace Pilot"
	case RoleVehicleCrew:
		return "Vehicle Crew"
	case RoleSoldier:
		return "Soldier"
	case RoleBattleArmour:
		return "Battle Armour"
	case RoleTech:
		return "Tech"
	case RoleDoctor:
		return "Doctor"
	case RoleAdministrator:
		return "Administrator"
	default:
		return "Unknown"
	}
}

// PersonnelRoles lists every role in array order
var PersonnelRoles = [NumPersonnelRoles]PersonnelRole{
	RoleMechWarrior, RoleAerospacePilot, RoleVehicleCrew, RoleSoldier,
	RoleBattleArmour, RoleTech, RoleDoctor, RoleAdministrator,
}

// PartQualities are the part quality grades, worst first
var PartQualities = [6]string{"A", "B", "C", "D", "E", "F"}

// AcquisitionSkills are the skills that can be used to roll for acquisitions
var AcquisitionSkills = []string{
	AcquisitionSkillAdministration,
	AcquisitionSkillNegotiation,
	AcquisitionSkillScrounge,
	AcquisitionSkillAutomatic,
}

const (
	AcquisitionSkillAdministration = "Administration"
	AcquisitionSkillNegotiation    = "Negotiation"
	AcquisitionSkillScrounge       = "Scrounge"
	AcquisitionSkillAutomatic      = "Automatic Success"
)
