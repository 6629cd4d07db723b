package campaign

import (
	"maps"
	"reflect"
	"slices"
)

// Options is the flat campaign options record. Every field is independent;
// the editor reads and writes them through the binding table.
type Options struct {
	// General
	UnitRatingMethod         UnitRatingMethod
	ManualUnitRatingModifier int

	// Repair and maintenance
	UseEraMods               bool
	AssignedTechFirst        bool
	ResetToFirstTech         bool
	UseQuirks                bool
	UseAeroSystemHits        bool
	DestroyByMargin          bool
	DestroyMargin            int
	DestroyPartTarget        int
	CheckMaintenance         bool
	MaintenanceCycleDays     int
	MaintenanceBonus         int
	UseQualityMaintenance    bool
	ReverseQualityNames      bool
	UseUnofficialMaintenance bool
	LogMaintenance           bool

	// Supplies and acquisitions
	WaitingPeriod                    int
	AcquisitionSkill                 string
	AcquisitionSupportStaffOnly      bool
	ClanAcquisitionPenalty           int
	ISAcquisitionPenalty             int
	UsePlanetaryAcquisition          bool
	MaxJumpsPlanetaryAcquisition     int
	PlanetAcquisitionNoClanCrossover bool
	NoClanPartsFromIS                bool
	PenaltyClanPartsFromIS           int
	PlanetAcquisitionVerbose         bool
	NDiceTransitTime                 int
	ConstantTransitTime              int
	AcquireMinimumTime               int
	AcquireMosBonus                  int

	// Tech limits
	LimitByYear          bool
	DisallowExtinctStuff bool
	AllowClanPurchases   bool
	AllowISPurchases     bool
	AllowCanonOnly       bool
	AllowCanonRefitOnly  bool
	TechLevel            TechLevel
	VariableTechLevel    bool
	FactionIntroDate     bool
	UseAmmoByType        bool

	// Personnel
	UseTactics                  bool
	UseInitiativeBonus          bool
	UseToughness                bool
	UseArtillery                bool
	UseAbilities                bool
	UseEdge                     bool
	UseSupportEdge              bool
	UseImplants                 bool
	AlternativeQualityAveraging bool
	UseTransfers                bool
	PersonnelLogSkillGain       bool
	PersonnelLogAbilityGain     bool
	PersonnelLogEdgeGain        bool
	HealingWaitingPeriod        int
	NaturalHealingWaitingPeriod int
	MinimumHitsForVehicles      int
	UseRandomHitsForVehicles    bool
	TougherHealing              bool
	UseAdvancedMedical          bool
	MaximumPatients             int
	UseDylansRandomXP           bool
	UseRandomDeaths             bool
	RandomDeathAgeGroups        map[AgeGroup]bool
	UseRandomMarriages          bool
	MinimumMarriageAge          int
	RandomMarriageAgeRange      int
	RandomMarriageChance        float64
	UseRandomProcreation        bool
	ProcreationChance           float64

	// Finances
	PayForParts                      bool
	PayForRepairs                    bool
	PayForUnits                      bool
	PayForSalaries                   bool
	PayForOverhead                   bool
	PayForMaintain                   bool
	PayForTransport                  bool
	PayForRecruitment                bool
	SellUnits                        bool
	SellParts                        bool
	UseLoanLimits                    bool
	UsePercentageMaintenance         bool
	InfantryDontCount                bool
	UsePeacetimeCost                 bool
	UseExtendedPartsModifier         bool
	ShowPeacetimeCost                bool
	FinancialYearDuration            FinancialYearDuration
	SimulateGrayMonday               bool
	ClanPriceModifier                float64
	UsedPartPriceMultipliers         [6]float64
	DamagedPartsValueMultiplier      float64
	UnrepairablePartsValueMultiplier float64
	CancelledOrderRefundMultiplier   float64
	SalaryCommissionMultiplier       float64
	SalaryEnlistedMultiplier         float64
	SalaryAntiMekMultiplier          float64

	// Mercenary
	EquipmentContractBase          bool
	EquipmentContractPercent       float64
	EquipmentContractSaleValue     bool
	DropShipContractPercent        float64
	JumpShipContractPercent        float64
	WarShipContractPercent         float64
	BLCSaleValue                   bool
	OverageRepaymentInFinalPayment bool

	// Experience
	ScenarioXP                  int
	KillXPAward                 int
	KillsForXP                  int
	TaskXP                      int
	NTasksXP                    int
	SuccessXP                   int
	MistakeXP                   int
	IdleXP                      int
	MonthsIdleXP                int
	TargetIdleXP                int
	ContractNegotiationXP       int
	AdminXP                     int
	AdminXPPeriod               int
	MissionXPFail               int
	MissionXPSuccess            int
	MissionXPOutstandingSuccess int
	EdgeCost                    int

	// Names and portraits
	UseOriginFactionForNames   bool
	SurnameWeights             map[SurnameStyle]int
	AssignPortraitOnRoleChange bool
	UsePortraitForRole         [NumPersonnelRoles]bool

	// Markets
	PersonnelMarketMethod               PersonnelMarketMethod
	PersonnelMarketReportRefresh        bool
	PersonnelMarketRandomRemovalTargets map[SkillLevel]int
	PersonnelMarketDylansWeight         float64
	UnitMarketMethod                    UnitMarketMethod
	UnitMarketRegionalMechVariations    bool
	InstantUnitMarketDelivery           bool
	UnitMarketReportRefresh             bool
	ContractMarketMethod                ContractMarketMethod
	ContractSearchRadius                int
	VariableContractLength              bool
	ContractMarketReportRefresh         bool
	ContractMaxSalvagePercentage        int

	// Against the Bot
	UseAtB                      bool
	UseStratCon                 bool
	AtBSkillLevel               SkillLevel
	UseShareSystem              bool
	SharesForAll                bool
	AeroRecruitsHaveUnits       bool
	RetirementRolls             bool
	TrackUnitFatigue            bool
	UseLeadership               bool
	TrackOriginalUnit           bool
	UseAero                     bool
	UseVehicles                 bool
	ClanVehicles                bool
	DoubleVehicles              bool
	AdjustPlayerVehicles        bool
	OpForLanceTypeMechs         int
	OpForLanceTypeMixed         int
	OpForLanceTypeVehicles      int
	OpForUsesVTOLs              bool
	UseDropShips                bool
	MercSizeLimited             bool
	RegionalMechVariations      bool
	AttachedPlayerCamouflage    bool
	PlayerControlsAttachedUnits bool
	SearchRadius                int
	AtBBattleChance             [4]int
	GenerateChases              bool
	UseWeatherConditions        bool
	UseLightConditions          bool
	UsePlanetaryConditions      bool
	RestrictPartsByMission      bool
	LimitLanceWeight            bool
	LimitLanceNumUnits          bool
	AllowOpForAeros             bool
	OpForAeroChance             int
	AllowOpForLocalUnits        bool
	OpForLocalUnitChance        int
	FixedMapChance              int
	SPAUpgradeIntensity         int
	ScenarioModMax              int
	ScenarioModChance           int
	ScenarioModBV               int
	AutoconfigMunitions         bool
	StaticRATs                  bool
	IgnoreRATEra                bool
	RATs                        []string
}

// NewDefaultOptions creates an options record with default values
func NewDefaultOptions() *Options {
	o := &Options{
		UnitRatingMethod: UnitRatingCampaignOps,

		DestroyMargin:         4,
		DestroyPartTarget:     10,
		CheckMaintenance:      true,
		MaintenanceCycleDays:  7,
		MaintenanceBonus:      -1,
		UseQualityMaintenance: true,

		WaitingPeriod:                    7,
		AcquisitionSkill:                 AcquisitionSkillAdministration,
		AcquisitionSupportStaffOnly:      true,
		MaxJumpsPlanetaryAcquisition:     2,
		PlanetAcquisitionNoClanCrossover: true,
		NoClanPartsFromIS:                true,
		PenaltyClanPartsFromIS:           4,
		NDiceTransitTime:                 1,
		AcquireMinimumTime:               1,
		AcquireMosBonus:                  1,

		LimitByYear:        true,
		AllowClanPurchases: true,
		AllowISPurchases:   true,
		TechLevel:          TechLevelExperimental,

		UseTransfers:                true,
		HealingWaitingPeriod:        1,
		NaturalHealingWaitingPeriod: 15,
		MinimumHitsForVehicles:      1,
		MaximumPatients:             25,
		RandomDeathAgeGroups:        make(map[AgeGroup]bool),
		MinimumMarriageAge:          16,
		RandomMarriageAgeRange:      10,
		RandomMarriageChance:        0.00025,
		ProcreationChance:           0.0005,

		FinancialYearDuration:            FinancialYearAnnual,
		ClanPriceModifier:                1.0,
		UsedPartPriceMultipliers:         [6]float64{0.1, 0.2, 0.3, 0.5, 0.7, 0.9},
		DamagedPartsValueMultiplier:      0.33,
		UnrepairablePartsValueMultiplier: 0.1,
		CancelledOrderRefundMultiplier:   0.5,
		SalaryCommissionMultiplier:       1.2,
		SalaryEnlistedMultiplier:         1.0,
		SalaryAntiMekMultiplier:          1.5,

		EquipmentContractPercent: 5.0,
		DropShipContractPercent:  1.0,

		ScenarioXP:                  1,
		TaskXP:                      1,
		NTasksXP:                    25,
		MonthsIdleXP:                2,
		TargetIdleXP:                10,
		AdminXPPeriod:               1,
		MissionXPFail:               1,
		MissionXPSuccess:            3,
		MissionXPOutstandingSuccess: 5,
		EdgeCost:                    10,

		UseOriginFactionForNames: true,
		SurnameWeights: map[SurnameStyle]int{
			SurnameNoChange:     100,
			SurnameYours:        55,
			SurnameSpouse:       10,
			SurnameHyphenYours:  30,
			SurnameHyphenSpouse: 20,
			SurnameMale:         50,
			SurnameFemale:       5,
		},
		UsePortraitForRole: [NumPersonnelRoles]bool{true},

		PersonnelMarketMethod:        PersonnelMarketRandom,
		PersonnelMarketReportRefresh: true,
		PersonnelMarketRandomRemovalTargets: map[SkillLevel]int{
			SkillLevelUltraGreen: 4,
			SkillLevelGreen:      4,
			SkillLevelRegular:    6,
			SkillLevelVeteran:    8,
			SkillLevelElite:      10,
			SkillLevelHeroic:     11,
			SkillLevelLegendary:  13,
		},
		PersonnelMarketDylansWeight:      0.3,
		UnitMarketMethod:                 UnitMarketNone,
		UnitMarketRegionalMechVariations: true,
		UnitMarketReportRefresh:          true,
		ContractMarketMethod:             ContractMarketNone,
		ContractSearchRadius:             800,
		ContractMarketReportRefresh:      true,
		ContractMaxSalvagePercentage:     100,

		AtBSkillLevel:            SkillLevelRegular,
		RetirementRolls:          true,
		UseLeadership:            true,
		UseVehicles:              true,
		OpForLanceTypeMechs:      1,
		OpForLanceTypeMixed:      2,
		OpForLanceTypeVehicles:   3,
		OpForUsesVTOLs:           true,
		AttachedPlayerCamouflage: true,
		SearchRadius:             800,
		AtBBattleChance:          [4]int{40, 20, 60, 10},
		GenerateChases:           true,
		UseWeatherConditions:     true,
		UseLightConditions:       true,
		UsePlanetaryConditions:   true,
		RestrictPartsByMission:   true,
		LimitLanceWeight:         true,
		LimitLanceNumUnits:       true,
		OpForAeroChance:          5,
		OpForLocalUnitChance:     5,
		FixedMapChance:           25,
		ScenarioModMax:           3,
		ScenarioModChance:        25,
		ScenarioModBV:            50,
		RATs:                     []string{"Xotl", "Total Warfare"},
	}

	for _, group := range AgeGroups {
		o.RandomDeathAgeGroups[group] = group == AgeGroupElder
	}

	return o
}

// Clone returns a deep copy; maps and slices are never shared
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	c := *o
	c.RandomDeathAgeGroups = maps.Clone(o.RandomDeathAgeGroups)
	c.SurnameWeights = maps.Clone(o.SurnameWeights)
	c.PersonnelMarketRandomRemovalTargets = maps.Clone(o.PersonnelMarketRandomRemovalTargets)
	c.RATs = slices.Clone(o.RATs)
	return &c
}

// Equal reports whether both records hold the same values. A nil and an
// empty RAT list are the same list.
func (o *Options) Equal(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	a, b := *o, *other
	if len(a.RATs) == 0 {
		a.RATs = nil
	}
	if len(b.RATs) == 0 {
		b.RATs = nil
	}
	return reflect.DeepEqual(&a, &b)
}
