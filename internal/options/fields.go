package options

import (
	"sync"

	"jordanella.com/campaign-options/internal/atb"
	"jordanella.com/campaign-options/internal/campaign"
)

var (
	TabGeneral            = Tab{ID: "general", Title: "General"}
	TabRepair             = Tab{ID: "repairAndMaintenance", Title: "Repair and Maintenance"}
	TabSupplies           = Tab{ID: "suppliesAndAcquisitions", Title: "Supplies and Acquisitions"}
	TabTechLimits         = Tab{ID: "techLimits", Title: "Tech Limits"}
	TabPersonnel          = Tab{ID: "personnel", Title: "Personnel"}
	TabFinances           = Tab{ID: "finances", Title: "Finances"}
	TabMercenary          = Tab{ID: "mercenary", Title: "Mercenary"}
	TabExperience         = Tab{ID: "experience", Title: "Experience"}
	TabSkillRandomization = Tab{ID: "skillRandomization", Title: "Skill Randomization"}
	TabNames              = Tab{ID: "namesAndPortraits", Title: "Names and Portraits"}
	TabMarkets            = Tab{ID: "markets", Title: "Markets"}
	TabAtB                = Tab{ID: "againstTheBot", Title: "Against the Bot"}
)

// Field ids referenced outside the table
const (
	FieldBattleIntensity  = "atbBattleIntensity"
	FieldUseAtB           = "useAtB"
	FieldUseTactics       = "useTactics"
	FieldUseAbilities     = "useAbilities"
	FieldUseEdge          = "useEdge"
	FieldCheckMaintenance = "checkMaintenance"
)

// BattleChanceIDs are the chance field ids in combat role order
var BattleChanceIDs = func() [4]string {
	var ids [4]string
	for i, role := range campaign.CombatRoles {
		ids[i] = "atbBattleChance" + idSuffix(role.String())
	}
	return ids
}()

// DefaultSchema returns the campaign options binding table
var DefaultSchema = sync.OnceValue(func() *Schema {
	s, err := NewSchema(defaultFields(), defaultDependencies())
	if err != nil {
		panic(err)
	}
	return s
})

func defaultFields() []Field {
	var f []Field
	add := func(fields ...Field) { f = append(f, fields...) }

	// General
	add(
		enumField(TabGeneral, "unitRatingMethod", "Unit Rating Method", "How the unit rating is calculated",
			campaign.UnitRatingMethods, inOptions(func(o *campaign.Options) *campaign.UnitRatingMethod { return &o.UnitRatingMethod })),
		intField(TabGeneral, "manualUnitRatingModifier", "Manual Unit Rating Modifier", "Added to the computed unit rating",
			-100, 100, inOptions(func(o *campaign.Options) *int { return &o.ManualUnitRatingModifier })),
	)

	// Repair and maintenance
	add(
		boolField(TabRepair, "useEraMods", "Use Era Modifiers", "Apply era based modifiers to repair rolls",
			inOptions(func(o *campaign.Options) *bool { return &o.UseEraMods })),
		boolField(TabRepair, "assignedTechFirst", "Assigned Tech First", "Prefer the assigned tech when repairing",
			inOptions(func(o *campaign.Options) *bool { return &o.AssignedTechFirst })),
		boolField(TabRepair, "resetToFirstTech", "Reset to First Tech", "Reset the tech selection after each repair",
			inOptions(func(o *campaign.Options) *bool { return &o.ResetToFirstTech })),
		boolField(TabRepair, "useQuirks", "Use Quirks", "Enable unit quirks",
			inOptions(func(o *campaign.Options) *bool { return &o.UseQuirks })),
		boolField(TabRepair, "useAeroSystemHits", "Use Aero System Hits", "Track aerospace critical system hits",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAeroSystemHits })),
		boolField(TabRepair, "destroyByMargin", "Destroy Parts by Margin", "Destroy parts when a repair fails by a margin instead of on a fixed target",
			inOptions(func(o *campaign.Options) *bool { return &o.DestroyByMargin })),
		intField(TabRepair, "destroyMargin", "Destroy Margin", "Failure margin that destroys the part",
			1, 20, inOptions(func(o *campaign.Options) *int { return &o.DestroyMargin })),
		intField(TabRepair, "destroyPartTarget", "Destroy Part Target", "Roll needed to keep the part",
			2, 13, inOptions(func(o *campaign.Options) *int { return &o.DestroyPartTarget })),
		boolField(TabRepair, FieldCheckMaintenance, "Check Maintenance", "Roll maintenance checks for every unit",
			inOptions(func(o *campaign.Options) *bool { return &o.CheckMaintenance })),
		intField(TabRepair, "maintenanceCycleDays", "Maintenance Cycle (days)", "Days between maintenance checks",
			1, 365, inOptions(func(o *campaign.Options) *int { return &o.MaintenanceCycleDays })),
		intField(TabRepair, "maintenanceBonus", "Maintenance Bonus", "Modifier applied to maintenance rolls",
			-13, 13, inOptions(func(o *campaign.Options) *int { return &o.MaintenanceBonus })),
		boolField(TabRepair, "useQualityMaintenance", "Use Quality Maintenance", "Part quality changes with maintenance results",
			inOptions(func(o *campaign.Options) *bool { return &o.UseQualityMaintenance })),
		boolField(TabRepair, "reverseQualityNames", "Reverse Quality Names", "Show F as the worst quality grade",
			inOptions(func(o *campaign.Options) *bool { return &o.ReverseQualityNames })),
		boolField(TabRepair, "useUnofficialMaintenance", "Use Unofficial Maintenance", "Apply unofficial maintenance rules",
			inOptions(func(o *campaign.Options) *bool { return &o.UseUnofficialMaintenance })),
		boolField(TabRepair, "logMaintenance", "Log Maintenance", "Write maintenance results to the daily report",
			inOptions(func(o *campaign.Options) *bool { return &o.LogMaintenance })),
	)

	// Supplies and acquisitions
	add(
		intField(TabSupplies, "waitingPeriod", "Waiting Period (days)", "Days between acquisition attempts",
			1, 365, inOptions(func(o *campaign.Options) *int { return &o.WaitingPeriod })),
		choiceField(TabSupplies, "acquisitionSkill", "Acquisition Skill", "Skill used for acquisition rolls",
			campaign.AcquisitionSkills, inOptions(func(o *campaign.Options) *string { return &o.AcquisitionSkill })),
		boolField(TabSupplies, "acquisitionSupportStaffOnly", "Support Staff Only", "Only support personnel may roll for acquisitions",
			inOptions(func(o *campaign.Options) *bool { return &o.AcquisitionSupportStaffOnly })),
		intField(TabSupplies, "clanAcquisitionPenalty", "Clan Acquisition Penalty", "Target modifier for Clan equipment",
			0, 13, inOptions(func(o *campaign.Options) *int { return &o.ClanAcquisitionPenalty })),
		intField(TabSupplies, "isAcquisitionPenalty", "Inner Sphere Acquisition Penalty", "Target modifier for Inner Sphere equipment",
			0, 13, inOptions(func(o *campaign.Options) *int { return &o.ISAcquisitionPenalty })),
		boolField(TabSupplies, "usePlanetaryAcquisition", "Use Planetary Acquisition", "Search nearby planets for parts",
			inOptions(func(o *campaign.Options) *bool { return &o.UsePlanetaryAcquisition })),
		intField(TabSupplies, "maxJumpsPlanetaryAcquisition", "Maximum Jumps", "How far to search for parts",
			0, 5, inOptions(func(o *campaign.Options) *int { return &o.MaxJumpsPlanetaryAcquisition })),
		boolField(TabSupplies, "planetAcquisitionNoClanCrossover", "No Clan Crossover", "Clan and Inner Sphere worlds never supply each other",
			inOptions(func(o *campaign.Options) *bool { return &o.PlanetAcquisitionNoClanCrossover })),
		boolField(TabSupplies, "noClanPartsFromIS", "No Clan Parts from Inner Sphere", "Inner Sphere worlds never sell Clan parts",
			inOptions(func(o *campaign.Options) *bool { return &o.NoClanPartsFromIS })),
		intField(TabSupplies, "penaltyClanPartsFromIS", "Clan Parts Penalty", "Target modifier for Clan parts on Inner Sphere worlds",
			0, 13, inOptions(func(o *campaign.Options) *int { return &o.PenaltyClanPartsFromIS })),
		boolField(TabSupplies, "planetAcquisitionVerbose", "Verbose Reporting", "Report every planet searched",
			inOptions(func(o *campaign.Options) *bool { return &o.PlanetAcquisitionVerbose })),
		intField(TabSupplies, "nDiceTransitTime", "Transit Time Dice", "Dice rolled for delivery time",
			0, 365, inOptions(func(o *campaign.Options) *int { return &o.NDiceTransitTime })),
		intField(TabSupplies, "constantTransitTime", "Transit Time Constant", "Days added to delivery time",
			0, 365, inOptions(func(o *campaign.Options) *int { return &o.ConstantTransitTime })),
		intField(TabSupplies, "acquireMinimumTime", "Minimum Transit Time", "Shortest possible delivery",
			0, 1000, inOptions(func(o *campaign.Options) *int { return &o.AcquireMinimumTime })),
		intField(TabSupplies, "acquireMosBonus", "Margin of Success Bonus", "Days saved per point of margin of success",
			0, 365, inOptions(func(o *campaign.Options) *int { return &o.AcquireMosBonus })),
	)

	// Tech limits
	add(
		boolField(TabTechLimits, "limitByYear", "Limit by Year", "Only equipment available in the current year",
			inOptions(func(o *campaign.Options) *bool { return &o.LimitByYear })),
		boolField(TabTechLimits, "disallowExtinctStuff", "Disallow Extinct Equipment", "Extinct equipment cannot be bought",
			inOptions(func(o *campaign.Options) *bool { return &o.DisallowExtinctStuff })),
		boolField(TabTechLimits, "allowClanPurchases", "Allow Clan Purchases", "Clan equipment can be bought",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowClanPurchases })),
		boolField(TabTechLimits, "allowISPurchases", "Allow Inner Sphere Purchases", "Inner Sphere equipment can be bought",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowISPurchases })),
		boolField(TabTechLimits, "allowCanonOnly", "Canon Purchases Only", "Only canon units can be bought",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowCanonOnly })),
		boolField(TabTechLimits, "allowCanonRefitOnly", "Canon Refits Only", "Only canon refits are allowed",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowCanonRefitOnly })),
		enumField(TabTechLimits, "techLevel", "Maximum Tech Level", "Highest rules level that can be bought",
			campaign.TechLevels, inOptions(func(o *campaign.Options) *campaign.TechLevel { return &o.TechLevel })),
		boolField(TabTechLimits, "variableTechLevel", "Variable Tech Level", "Tech level follows the current year",
			inOptions(func(o *campaign.Options) *bool { return &o.VariableTechLevel })),
		boolField(TabTechLimits, "factionIntroDate", "Use Faction Intro Date", "Availability follows the faction's introduction date",
			inOptions(func(o *campaign.Options) *bool { return &o.FactionIntroDate })),
		boolField(TabTechLimits, "useAmmoByType", "Ammo by Type", "Swap ammo between compatible types",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAmmoByType })),
	)

	// Personnel
	add(
		boolField(TabPersonnel, FieldUseTactics, "Use Tactics", "Commanders roll tactics to modify initiative",
			inOptions(func(o *campaign.Options) *bool { return &o.UseTactics })),
		boolField(TabPersonnel, "useInitiativeBonus", "Use Initiative Bonus", "Command rank grants an initiative bonus",
			inOptions(func(o *campaign.Options) *bool { return &o.UseInitiativeBonus })),
		boolField(TabPersonnel, "useToughness", "Use Toughness", "Personnel have a toughness value",
			inOptions(func(o *campaign.Options) *bool { return &o.UseToughness })),
		boolField(TabPersonnel, "useArtillery", "Use Artillery", "Personnel can have the artillery skill",
			inOptions(func(o *campaign.Options) *bool { return &o.UseArtillery })),
		boolField(TabPersonnel, FieldUseAbilities, "Use Special Abilities", "Personnel can gain special pilot abilities",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAbilities })),
		boolField(TabPersonnel, FieldUseEdge, "Use Edge", "Personnel can spend edge to reroll",
			inOptions(func(o *campaign.Options) *bool { return &o.UseEdge })),
		boolField(TabPersonnel, "useSupportEdge", "Use Support Edge", "Support personnel can spend edge",
			inOptions(func(o *campaign.Options) *bool { return &o.UseSupportEdge })),
		boolField(TabPersonnel, "useImplants", "Use Implants", "Enable manei domini implants",
			inOptions(func(o *campaign.Options) *bool { return &o.UseImplants })),
		boolField(TabPersonnel, "alternativeQualityAveraging", "Alternative Quality Averaging", "Average skill levels with the alternative method",
			inOptions(func(o *campaign.Options) *bool { return &o.AlternativeQualityAveraging })),
		boolField(TabPersonnel, "useTransfers", "Log Transfers", "Log personnel transfers between units",
			inOptions(func(o *campaign.Options) *bool { return &o.UseTransfers })),
		boolField(TabPersonnel, "personnelLogSkillGain", "Log Skill Gain", "Log skill improvements",
			inOptions(func(o *campaign.Options) *bool { return &o.PersonnelLogSkillGain })),
		boolField(TabPersonnel, "personnelLogAbilityGain", "Log Ability Gain", "Log new special abilities",
			inOptions(func(o *campaign.Options) *bool { return &o.PersonnelLogAbilityGain })),
		boolField(TabPersonnel, "personnelLogEdgeGain", "Log Edge Gain", "Log edge purchases",
			inOptions(func(o *campaign.Options) *bool { return &o.PersonnelLogEdgeGain })),
		intField(TabPersonnel, "healingWaitingPeriod", "Healing Waiting Period (days)", "Days between medical checks",
			1, 30, inOptions(func(o *campaign.Options) *int { return &o.HealingWaitingPeriod })),
		intField(TabPersonnel, "naturalHealingWaitingPeriod", "Natural Healing Period (days)", "Days to heal without a doctor",
			1, 365, inOptions(func(o *campaign.Options) *int { return &o.NaturalHealingWaitingPeriod })),
		intField(TabPersonnel, "minimumHitsForVehicles", "Minimum Hits for Vehicle Crew", "Hits dealt to crew of a destroyed vehicle",
			1, 5, inOptions(func(o *campaign.Options) *int { return &o.MinimumHitsForVehicles })),
		boolField(TabPersonnel, "useRandomHitsForVehicles", "Random Hits for Vehicle Crew", "Roll hits for vehicle crew",
			inOptions(func(o *campaign.Options) *bool { return &o.UseRandomHitsForVehicles })),
		boolField(TabPersonnel, "tougherHealing", "Tougher Healing", "Repeated injuries heal more slowly",
			inOptions(func(o *campaign.Options) *bool { return &o.TougherHealing })),
		boolField(TabPersonnel, "useAdvancedMedical", "Advanced Medical", "Track individual injuries",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAdvancedMedical })),
		intField(TabPersonnel, "maximumPatients", "Maximum Patients", "Patients one doctor can treat",
			1, 100, inOptions(func(o *campaign.Options) *int { return &o.MaximumPatients })),
		boolField(TabPersonnel, "useDylansRandomXP", "Dylan's Random XP", "Award random XP on each new day",
			inOptions(func(o *campaign.Options) *bool { return &o.UseDylansRandomXP })),
		boolField(TabPersonnel, "useRandomDeaths", "Random Deaths", "Personnel can die of natural causes",
			inOptions(func(o *campaign.Options) *bool { return &o.UseRandomDeaths })),
	)
	for _, group := range campaign.AgeGroups {
		add(boolField(TabPersonnel, "randomDeathAgeGroup"+idSuffix(group.String()), group.String()+" Deaths",
			"Random deaths apply to this age group",
			optionsEntry(func(o *campaign.Options) *map[campaign.AgeGroup]bool { return &o.RandomDeathAgeGroups }, group)))
	}
	add(
		boolField(TabPersonnel, "useRandomMarriages", "Random Marriages", "Personnel can marry at random",
			inOptions(func(o *campaign.Options) *bool { return &o.UseRandomMarriages })),
		intField(TabPersonnel, "minimumMarriageAge", "Minimum Marriage Age", "Youngest age at which a person can marry",
			14, 99, inOptions(func(o *campaign.Options) *int { return &o.MinimumMarriageAge })),
		intField(TabPersonnel, "randomMarriageAgeRange", "Marriage Age Range", "Largest age gap for a random marriage",
			0, 99, inOptions(func(o *campaign.Options) *int { return &o.RandomMarriageAgeRange })),
		floatField(TabPersonnel, "randomMarriageChance", "Daily Marriage Chance", "Chance per day that an eligible person marries",
			0, 1, 0.00001, inOptions(func(o *campaign.Options) *float64 { return &o.RandomMarriageChance })),
		boolField(TabPersonnel, "useRandomProcreation", "Random Procreation", "Personnel can have children at random",
			inOptions(func(o *campaign.Options) *bool { return &o.UseRandomProcreation })),
		floatField(TabPersonnel, "procreationChance", "Daily Procreation Chance", "Chance per day of a pregnancy",
			0, 1, 0.00001, inOptions(func(o *campaign.Options) *float64 { return &o.ProcreationChance })),
	)

	// Finances
	add(
		boolField(TabFinances, "payForParts", "Pay for Parts", "Parts cost money",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForParts })),
		boolField(TabFinances, "payForRepairs", "Pay for Repairs", "Repairs cost money",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForRepairs })),
		boolField(TabFinances, "payForUnits", "Pay for Units", "Units cost money",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForUnits })),
		boolField(TabFinances, "payForSalaries", "Pay for Salaries", "Pay personnel every month",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForSalaries })),
		boolField(TabFinances, "payForOverhead", "Pay for Overhead", "Pay monthly overhead",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForOverhead })),
		boolField(TabFinances, "payForMaintain", "Pay for Maintenance", "Pay monthly maintenance",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForMaintain })),
		boolField(TabFinances, "payForTransport", "Pay for Transport", "Pay for transport between planets",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForTransport })),
		boolField(TabFinances, "payForRecruitment", "Pay for Recruitment", "Hiring costs money",
			inOptions(func(o *campaign.Options) *bool { return &o.PayForRecruitment })),
		boolField(TabFinances, "sellUnits", "Sell Units", "Units can be sold",
			inOptions(func(o *campaign.Options) *bool { return &o.SellUnits })),
		boolField(TabFinances, "sellParts", "Sell Parts", "Parts can be sold",
			inOptions(func(o *campaign.Options) *bool { return &o.SellParts })),
		boolField(TabFinances, "useLoanLimits", "Use Loan Limits", "Limit loans by unit rating",
			inOptions(func(o *campaign.Options) *bool { return &o.UseLoanLimits })),
		boolField(TabFinances, "usePercentageMaintenance", "Percentage Maintenance", "Maintenance is a percentage of unit value",
			inOptions(func(o *campaign.Options) *bool { return &o.UsePercentageMaintenance })),
		boolField(TabFinances, "infantryDontCount", "Infantry Don't Count", "Infantry are excluded from bay costs",
			inOptions(func(o *campaign.Options) *bool { return &o.InfantryDontCount })),
		boolField(TabFinances, "usePeacetimeCost", "Use Peacetime Cost", "Track peacetime operating costs",
			inOptions(func(o *campaign.Options) *bool { return &o.UsePeacetimeCost })),
		boolField(TabFinances, "useExtendedPartsModifier", "Extended Parts Modifier", "Parts cost more in peacetime",
			inOptions(func(o *campaign.Options) *bool { return &o.UseExtendedPartsModifier })),
		boolField(TabFinances, "showPeacetimeCost", "Show Peacetime Cost", "Show peacetime cost in the finances report",
			inOptions(func(o *campaign.Options) *bool { return &o.ShowPeacetimeCost })),
		enumField(TabFinances, "financialYearDuration", "Financial Year", "How often the books are closed",
			campaign.FinancialYearDurations, inOptions(func(o *campaign.Options) *campaign.FinancialYearDuration { return &o.FinancialYearDuration })),
		boolField(TabFinances, "simulateGrayMonday", "Simulate Gray Monday", "Apply the Gray Monday economic collapse",
			inOptions(func(o *campaign.Options) *bool { return &o.SimulateGrayMonday })),
		floatField(TabFinances, "clanPriceModifier", "Clan Price Multiplier", "Price multiplier for Clan equipment",
			1, 100, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.ClanPriceModifier })),
	)
	for i, quality := range campaign.PartQualities {
		add(floatField(TabFinances, "usedPartPriceMultiplier"+quality, "Used Part Price (Quality "+quality+")",
			"Price multiplier for used parts of this quality",
			0, 1, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.UsedPartPriceMultipliers[i] })))
	}
	add(
		floatField(TabFinances, "damagedPartsValueMultiplier", "Damaged Parts Value", "Value multiplier for damaged parts",
			0, 1, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.DamagedPartsValueMultiplier })),
		floatField(TabFinances, "unrepairablePartsValueMultiplier", "Unrepairable Parts Value", "Value multiplier for unrepairable parts",
			0, 1, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.UnrepairablePartsValueMultiplier })),
		floatField(TabFinances, "cancelledOrderRefundMultiplier", "Cancelled Order Refund", "Share refunded when an order is cancelled",
			0, 1, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.CancelledOrderRefundMultiplier })),
		floatField(TabFinances, "salaryCommissionMultiplier", "Officer Salary Multiplier", "Salary multiplier for officers",
			0, 10, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.SalaryCommissionMultiplier })),
		floatField(TabFinances, "salaryEnlistedMultiplier", "Enlisted Salary Multiplier", "Salary multiplier for enlisted personnel",
			0, 10, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.SalaryEnlistedMultiplier })),
		floatField(TabFinances, "salaryAntiMekMultiplier", "Anti-Mek Salary Multiplier", "Salary multiplier for anti-Mek infantry",
			0, 10, 0.05, inOptions(func(o *campaign.Options) *float64 { return &o.SalaryAntiMekMultiplier })),
	)

	// Mercenary
	add(
		boolField(TabMercenary, "equipmentContractBase", "Equipment Based Contract Pay", "Contract pay follows equipment value",
			inOptions(func(o *campaign.Options) *bool { return &o.EquipmentContractBase })),
		floatField(TabMercenary, "equipmentContractPercent", "Equipment Percent", "Percent of equipment value paid per month",
			0, 100, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.EquipmentContractPercent })),
		boolField(TabMercenary, "equipmentContractSaleValue", "Use Sale Value", "Use sale value instead of purchase value",
			inOptions(func(o *campaign.Options) *bool { return &o.EquipmentContractSaleValue })),
		floatField(TabMercenary, "dropShipContractPercent", "DropShip Percent", "Percent of DropShip value added to pay",
			0, 20, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.DropShipContractPercent })),
		floatField(TabMercenary, "jumpShipContractPercent", "JumpShip Percent", "Percent of JumpShip value added to pay",
			0, 20, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.JumpShipContractPercent })),
		floatField(TabMercenary, "warShipContractPercent", "WarShip Percent", "Percent of WarShip value added to pay",
			0, 20, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.WarShipContractPercent })),
		boolField(TabMercenary, "blcSaleValue", "BLC Sale Value", "Battle loss compensation uses sale value",
			inOptions(func(o *campaign.Options) *bool { return &o.BLCSaleValue })),
		boolField(TabMercenary, "overageRepaymentInFinalPayment", "Overage Repayment", "Repay overage in the final contract payment",
			inOptions(func(o *campaign.Options) *bool { return &o.OverageRepaymentInFinalPayment })),
	)

	// Experience
	xp := func(id, label, tip string, min, max int, ptr func(*campaign.Options) *int) Field {
		return intField(TabExperience, id, label, tip, min, max, inOptions(ptr))
	}
	add(
		xp("scenarioXP", "Scenario XP", "XP for taking part in a scenario", 0, 10000, func(o *campaign.Options) *int { return &o.ScenarioXP }),
		xp("killXPAward", "Kill XP", "XP per group of kills", 0, 10000, func(o *campaign.Options) *int { return &o.KillXPAward }),
		xp("killsForXP", "Kills for XP", "Kills needed for the kill award", 0, 10000, func(o *campaign.Options) *int { return &o.KillsForXP }),
		xp("taskXP", "Task XP", "XP per group of tasks", 0, 10000, func(o *campaign.Options) *int { return &o.TaskXP }),
		xp("nTasksXP", "Tasks for XP", "Tasks needed for the task award", 0, 10000, func(o *campaign.Options) *int { return &o.NTasksXP }),
		xp("successXP", "Success XP", "XP for a successful task", 0, 10000, func(o *campaign.Options) *int { return &o.SuccessXP }),
		xp("mistakeXP", "Mistake XP", "XP for a failed task", 0, 10000, func(o *campaign.Options) *int { return &o.MistakeXP }),
		xp("idleXP", "Idle XP", "XP for idle personnel", 0, 10000, func(o *campaign.Options) *int { return &o.IdleXP }),
		xp("monthsIdleXP", "Idle Months", "Months between idle XP rolls", 0, 36, func(o *campaign.Options) *int { return &o.MonthsIdleXP }),
		xp("targetIdleXP", "Idle XP Target", "Roll needed for idle XP", 2, 13, func(o *campaign.Options) *int { return &o.TargetIdleXP }),
		xp("contractNegotiationXP", "Negotiation XP", "XP for negotiating a contract", 0, 10000, func(o *campaign.Options) *int { return &o.ContractNegotiationXP }),
		xp("adminXP", "Admin XP", "XP for administrators", 0, 10000, func(o *campaign.Options) *int { return &o.AdminXP }),
		xp("adminXPPeriod", "Admin XP Period", "Months between admin XP awards", 1, 12, func(o *campaign.Options) *int { return &o.AdminXPPeriod }),
		xp("missionXPFail", "Mission Failure XP", "XP for a failed mission", 0, 10000, func(o *campaign.Options) *int { return &o.MissionXPFail }),
		xp("missionXPSuccess", "Mission Success XP", "XP for a successful mission", 0, 10000, func(o *campaign.Options) *int { return &o.MissionXPSuccess }),
		xp("missionXPOutstandingSuccess", "Outstanding Success XP", "XP for an outstanding mission", 0, 10000, func(o *campaign.Options) *int { return &o.MissionXPOutstandingSuccess }),
		xp("edgeCost", "Edge Cost", "XP cost of one point of edge", 0, 10000, func(o *campaign.Options) *int { return &o.EdgeCost }),
	)

	// Skill randomization
	add(
		intField(TabSkillRandomization, "overallRecruitBonus", "Overall Recruit Bonus", "Bonus to every recruit skill roll",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.OverallRecruitBonus })),
	)
	for _, role := range campaign.PersonnelRoles {
		add(intField(TabSkillRandomization, "recruitBonus"+idSuffix(role.String()), role.String()+" Bonus",
			"Bonus to skill rolls for this role",
			-12, 12, skillsEntry(func(p *campaign.RandomSkillPreferences) *map[campaign.PersonnelRole]int { return &p.RecruitBonuses }, role)))
	}
	add(
		boolField(TabSkillRandomization, "randomizeSkill", "Randomize Skills", "Roll starting skills for recruits",
			inSkills(func(p *campaign.RandomSkillPreferences) *bool { return &p.RandomizeSkill })),
		boolField(TabSkillRandomization, "useClanBonuses", "Use Clan Bonuses", "Clan recruits roll with a bonus",
			inSkills(func(p *campaign.RandomSkillPreferences) *bool { return &p.UseClanBonuses })),
		intField(TabSkillRandomization, "antiMekProb", "Anti-Mek Chance", "Chance an infantry recruit is anti-Mek trained",
			0, 100, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.AntiMekProb })),
		intField(TabSkillRandomization, "artilleryProb", "Artillery Chance", "Chance a recruit has the artillery skill",
			0, 100, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.ArtilleryProb })),
		intField(TabSkillRandomization, "artilleryBonus", "Artillery Bonus", "Bonus to the artillery skill roll",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.ArtilleryBonus })),
		intField(TabSkillRandomization, "secondSkillProb", "Secondary Skill Chance", "Chance a recruit has a second skill",
			0, 100, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.SecondSkillProb })),
		intField(TabSkillRandomization, "secondSkillBonus", "Secondary Skill Bonus", "Bonus to the second skill roll",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.SecondSkillBonus })),
		intField(TabSkillRandomization, "combatSmallArmsBonus", "Combat Small Arms Bonus", "Small arms bonus for combat personnel",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.CombatSmallArmsBonus })),
		intField(TabSkillRandomization, "supportSmallArmsBonus", "Support Small Arms Bonus", "Small arms bonus for support personnel",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.SupportSmallArmsBonus })),
	)
	for i, tier := range campaign.ExperienceTiers {
		add(intField(TabSkillRandomization, "tacticsModifier"+idSuffix(tier.String()), tier.String()+" Tactics Modifier",
			"Tactics roll modifier for this experience level",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.TacticsModifiers[i] })))
	}
	for i, tier := range campaign.ExperienceTiers {
		add(intField(TabSkillRandomization, "specialAbilityBonus"+idSuffix(tier.String()), tier.String()+" Ability Modifier",
			"Special ability roll modifier for this experience level",
			-12, 12, inSkills(func(p *campaign.RandomSkillPreferences) *int { return &p.SpecialAbilityBonus[i] })))
	}

	// Names and portraits
	add(
		boolField(TabNames, "useOriginFactionForNames", "Use Origin Faction for Names", "Names follow the person's origin faction",
			inOptions(func(o *campaign.Options) *bool { return &o.UseOriginFactionForNames })),
	)
	for _, style := range campaign.SurnameStyles {
		add(intField(TabNames, "surnameWeight"+idSuffix(style.String()), style.String()+" Weight",
			"Relative weight of this surname change on marriage",
			0, 100, optionsEntry(func(o *campaign.Options) *map[campaign.SurnameStyle]int { return &o.SurnameWeights }, style)))
	}
	add(
		boolField(TabNames, "assignPortraitOnRoleChange", "Assign Portrait on Role Change", "Pick a new portrait when the role changes",
			inOptions(func(o *campaign.Options) *bool { return &o.AssignPortraitOnRoleChange })),
	)
	for i, role := range campaign.PersonnelRoles {
		add(boolField(TabNames, "usePortraitForRole"+idSuffix(role.String()), role.String()+" Portraits",
			"Assign random portraits to this role",
			inOptions(func(o *campaign.Options) *bool { return &o.UsePortraitForRole[i] })))
	}

	// Markets
	add(
		enumField(TabMarkets, "personnelMarketMethod", "Personnel Market", "Generator for the personnel market",
			campaign.PersonnelMarketMethods, inOptions(func(o *campaign.Options) *campaign.PersonnelMarketMethod { return &o.PersonnelMarketMethod })),
		boolField(TabMarkets, "personnelMarketReportRefresh", "Report Personnel Refresh", "Report when the personnel market refreshes",
			inOptions(func(o *campaign.Options) *bool { return &o.PersonnelMarketReportRefresh })),
	)
	for _, level := range campaign.SkillLevels {
		add(intField(TabMarkets, "personnelMarketRandomRemovalTarget"+idSuffix(level.String()), level.String()+" Removal Target",
			"Roll needed to keep a recruit of this level on the market",
			2, 13, optionsEntry(func(o *campaign.Options) *map[campaign.SkillLevel]int { return &o.PersonnelMarketRandomRemovalTargets }, level)))
	}
	add(
		floatField(TabMarkets, "personnelMarketDylansWeight", "Dylan's Weight", "Weight used by Dylan's method",
			0, 1, 0.1, inOptions(func(o *campaign.Options) *float64 { return &o.PersonnelMarketDylansWeight })),
		enumField(TabMarkets, "unitMarketMethod", "Unit Market", "Generator for the unit market",
			campaign.UnitMarketMethods, inOptions(func(o *campaign.Options) *campaign.UnitMarketMethod { return &o.UnitMarketMethod })),
		boolField(TabMarkets, "unitMarketRegionalMechVariations", "Regional Mek Variations", "Unit market offers regional variants",
			inOptions(func(o *campaign.Options) *bool { return &o.UnitMarketRegionalMechVariations })),
		boolField(TabMarkets, "instantUnitMarketDelivery", "Instant Delivery", "Units bought on the market arrive immediately",
			inOptions(func(o *campaign.Options) *bool { return &o.InstantUnitMarketDelivery })),
		boolField(TabMarkets, "unitMarketReportRefresh", "Report Unit Refresh", "Report when the unit market refreshes",
			inOptions(func(o *campaign.Options) *bool { return &o.UnitMarketReportRefresh })),
		enumField(TabMarkets, "contractMarketMethod", "Contract Market", "Generator for the contract market",
			campaign.ContractMarketMethods, inOptions(func(o *campaign.Options) *campaign.ContractMarketMethod { return &o.ContractMarketMethod })),
		intField(TabMarkets, "contractSearchRadius", "Contract Search Radius", "Light years searched for contracts",
			100, 2500, inOptions(func(o *campaign.Options) *int { return &o.ContractSearchRadius })),
		boolField(TabMarkets, "variableContractLength", "Variable Contract Length", "Contract length is rolled",
			inOptions(func(o *campaign.Options) *bool { return &o.VariableContractLength })),
		boolField(TabMarkets, "contractMarketReportRefresh", "Report Contract Refresh", "Report when the contract market refreshes",
			inOptions(func(o *campaign.Options) *bool { return &o.ContractMarketReportRefresh })),
		intField(TabMarkets, "contractMaxSalvagePercentage", "Maximum Salvage Percent", "Highest salvage share a contract offers",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.ContractMaxSalvagePercentage })),
	)

	// Against the Bot
	add(
		boolField(TabAtB, FieldUseAtB, "Use Against the Bot", "Enable the Against the Bot campaign rules",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAtB })),
		boolField(TabAtB, "useStratCon", "Use StratCon", "Use the StratCon campaign layer",
			inOptions(func(o *campaign.Options) *bool { return &o.UseStratCon })),
		enumField(TabAtB, "atbSkillLevel", "OpFor Skill Level", "Skill level of generated opponents",
			campaign.SkillLevels, inOptions(func(o *campaign.Options) *campaign.SkillLevel { return &o.AtBSkillLevel })),
		boolField(TabAtB, "useShareSystem", "Use Share System", "Pay personnel with shares of contract profit",
			inOptions(func(o *campaign.Options) *bool { return &o.UseShareSystem })),
		boolField(TabAtB, "sharesForAll", "Shares for All", "Every person receives shares",
			inOptions(func(o *campaign.Options) *bool { return &o.SharesForAll })),
		boolField(TabAtB, "aeroRecruitsHaveUnits", "Aero Recruits Have Units", "Aerospace recruits bring a fighter",
			inOptions(func(o *campaign.Options) *bool { return &o.AeroRecruitsHaveUnits })),
		boolField(TabAtB, "retirementRolls", "Retirement Rolls", "Roll for retirement at the end of contracts",
			inOptions(func(o *campaign.Options) *bool { return &o.RetirementRolls })),
		boolField(TabAtB, "trackUnitFatigue", "Track Unit Fatigue", "Track fatigue between scenarios",
			inOptions(func(o *campaign.Options) *bool { return &o.TrackUnitFatigue })),
		boolField(TabAtB, "useLeadership", "Use Leadership", "Leadership adds reinforcements",
			inOptions(func(o *campaign.Options) *bool { return &o.UseLeadership })),
		boolField(TabAtB, "trackOriginalUnit", "Track Original Unit", "Remember which unit a person joined with",
			inOptions(func(o *campaign.Options) *bool { return &o.TrackOriginalUnit })),
		boolField(TabAtB, "useAero", "Use Aerospace", "Generate aerospace forces",
			inOptions(func(o *campaign.Options) *bool { return &o.UseAero })),
		boolField(TabAtB, "useVehicles", "Use Vehicles", "Generate vehicle forces",
			inOptions(func(o *campaign.Options) *bool { return &o.UseVehicles })),
		boolField(TabAtB, "clanVehicles", "Clan Vehicles", "Clans field vehicles",
			inOptions(func(o *campaign.Options) *bool { return &o.ClanVehicles })),
		boolField(TabAtB, "doubleVehicles", "Double Vehicles", "Vehicle lances have twice as many units",
			inOptions(func(o *campaign.Options) *bool { return &o.DoubleVehicles })),
		boolField(TabAtB, "adjustPlayerVehicles", "Adjust Player Vehicles", "Count player vehicles at half strength",
			inOptions(func(o *campaign.Options) *bool { return &o.AdjustPlayerVehicles })),
		intField(TabAtB, "opForLanceTypeMechs", "OpFor Mek Lances", "Weight of Mek lances",
			0, 10, inOptions(func(o *campaign.Options) *int { return &o.OpForLanceTypeMechs })),
		intField(TabAtB, "opForLanceTypeMixed", "OpFor Mixed Lances", "Weight of mixed lances",
			0, 10, inOptions(func(o *campaign.Options) *int { return &o.OpForLanceTypeMixed })),
		intField(TabAtB, "opForLanceTypeVehicles", "OpFor Vehicle Lances", "Weight of vehicle lances",
			0, 10, inOptions(func(o *campaign.Options) *int { return &o.OpForLanceTypeVehicles })),
		boolField(TabAtB, "opForUsesVTOLs", "OpFor Uses VTOLs", "Opponents can field VTOLs",
			inOptions(func(o *campaign.Options) *bool { return &o.OpForUsesVTOLs })),
		boolField(TabAtB, "useDropShips", "Use DropShips", "Generate DropShip scenarios",
			inOptions(func(o *campaign.Options) *bool { return &o.UseDropShips })),
		boolField(TabAtB, "mercSizeLimited", "Mercenary Size Limited", "Mercenary size limits contract offers",
			inOptions(func(o *campaign.Options) *bool { return &o.MercSizeLimited })),
		boolField(TabAtB, "regionalMechVariations", "Regional Mek Variations", "Opponents field regional variants",
			inOptions(func(o *campaign.Options) *bool { return &o.RegionalMechVariations })),
		boolField(TabAtB, "attachedPlayerCamouflage", "Attached Player Camouflage", "Attached allies use the player's camouflage",
			inOptions(func(o *campaign.Options) *bool { return &o.AttachedPlayerCamouflage })),
		boolField(TabAtB, "playerControlsAttachedUnits", "Player Controls Attached Units", "The player controls attached allies",
			inOptions(func(o *campaign.Options) *bool { return &o.PlayerControlsAttachedUnits })),
		intField(TabAtB, "searchRadius", "Search Radius", "Light years searched for contracts",
			100, 2500, inOptions(func(o *campaign.Options) *int { return &o.SearchRadius })),
		Field{
			ID:      FieldBattleIntensity,
			Tab:     TabAtB,
			Label:   "Battle Intensity",
			Tooltip: "Scales the weekly battle chance of every lance role",
			Kind:    KindFloat,
			Min:     0, Max: atb.MaximumIntensity, Step: 0.1,
			Derived: true,
			Record:  RecordOptions,
			get:     func(r Records) any { return atb.BattleIntensity(r.Options.AtBBattleChance) },
		},
	)
	for i, role := range campaign.CombatRoles {
		add(intField(TabAtB, BattleChanceIDs[i], role.String()+" Battle Chance",
			"Weekly percent chance of a battle for lances in this role",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.AtBBattleChance[i] })))
	}
	add(
		boolField(TabAtB, "generateChases", "Generate Chases", "Generate chase scenarios",
			inOptions(func(o *campaign.Options) *bool { return &o.GenerateChases })),
		boolField(TabAtB, "useWeatherConditions", "Weather Conditions", "Roll weather for scenarios",
			inOptions(func(o *campaign.Options) *bool { return &o.UseWeatherConditions })),
		boolField(TabAtB, "useLightConditions", "Light Conditions", "Roll light for scenarios",
			inOptions(func(o *campaign.Options) *bool { return &o.UseLightConditions })),
		boolField(TabAtB, "usePlanetaryConditions", "Planetary Conditions", "Use the planet's atmosphere and gravity",
			inOptions(func(o *campaign.Options) *bool { return &o.UsePlanetaryConditions })),
		boolField(TabAtB, "restrictPartsByMission", "Restrict Parts by Mission", "Part availability depends on the contract",
			inOptions(func(o *campaign.Options) *bool { return &o.RestrictPartsByMission })),
		boolField(TabAtB, "limitLanceWeight", "Limit Lance Weight", "Lances must meet their role's weight class",
			inOptions(func(o *campaign.Options) *bool { return &o.LimitLanceWeight })),
		boolField(TabAtB, "limitLanceNumUnits", "Limit Lance Size", "Lances must have the standard number of units",
			inOptions(func(o *campaign.Options) *bool { return &o.LimitLanceNumUnits })),
		boolField(TabAtB, "allowOpForAeros", "Allow OpFor Aerospace", "Opponents can bring aerospace support",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowOpForAeros })),
		intField(TabAtB, "opForAeroChance", "OpFor Aerospace Chance", "Chance of opposing aerospace support",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.OpForAeroChance })),
		boolField(TabAtB, "allowOpForLocalUnits", "Allow OpFor Local Units", "Opponents can bring local garrison units",
			inOptions(func(o *campaign.Options) *bool { return &o.AllowOpForLocalUnits })),
		intField(TabAtB, "opForLocalUnitChance", "OpFor Local Unit Chance", "Chance of local garrison units",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.OpForLocalUnitChance })),
		intField(TabAtB, "fixedMapChance", "Fixed Map Chance", "Chance a scenario uses a fixed map",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.FixedMapChance })),
		intField(TabAtB, "spaUpgradeIntensity", "SPA Upgrade Intensity", "How aggressively opponents gain special abilities",
			-1, 3, inOptions(func(o *campaign.Options) *int { return &o.SPAUpgradeIntensity })),
		intField(TabAtB, "scenarioModMax", "Maximum Scenario Modifiers", "Most modifiers a scenario can roll",
			0, 10, inOptions(func(o *campaign.Options) *int { return &o.ScenarioModMax })),
		intField(TabAtB, "scenarioModChance", "Scenario Modifier Chance", "Chance of each scenario modifier",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.ScenarioModChance })),
		intField(TabAtB, "scenarioModBV", "Scenario Modifier BV", "Battle value percent added by modifiers",
			0, 100, inOptions(func(o *campaign.Options) *int { return &o.ScenarioModBV })),
		boolField(TabAtB, "autoconfigMunitions", "Autoconfigure Munitions", "Load scenario appropriate ammo",
			inOptions(func(o *campaign.Options) *bool { return &o.AutoconfigMunitions })),
		boolField(TabAtB, "staticRATs", "Static RATs", "Use fixed random assignment tables",
			inOptions(func(o *campaign.Options) *bool { return &o.StaticRATs })),
		boolField(TabAtB, "ignoreRATEra", "Ignore RAT Era", "Use tables from any era",
			inOptions(func(o *campaign.Options) *bool { return &o.IgnoreRATEra })),
		listField(TabAtB, "rats", "RAT Order", "Random assignment tables in search order, comma separated. Quote a name that holds a comma",
			inOptions(func(o *campaign.Options) *[]string { return &o.RATs })),
	)

	return f
}

func defaultDependencies() []Dependency {
	ids := func(prefix string, names []string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = prefix + idSuffix(n)
		}
		return out
	}

	ageGroups := ids("randomDeathAgeGroup", enumNames(campaign.AgeGroups))
	portraitRoles := ids("usePortraitForRole", enumNames(campaign.PersonnelRoles[:]))
	tiers := enumNames(campaign.ExperienceTiers[:])

	atbDependents := []string{
		"useStratCon", "atbSkillLevel", "useShareSystem", "sharesForAll", "aeroRecruitsHaveUnits",
		"retirementRolls", "trackUnitFatigue", "useLeadership", "trackOriginalUnit", "useAero",
		"useVehicles", "useDropShips", "mercSizeLimited", "regionalMechVariations",
		"attachedPlayerCamouflage", "playerControlsAttachedUnits", "searchRadius",
		FieldBattleIntensity, "generateChases", "useWeatherConditions", "useLightConditions",
		"usePlanetaryConditions", "restrictPartsByMission", "limitLanceWeight", "limitLanceNumUnits",
		"allowOpForAeros", "allowOpForLocalUnits", "fixedMapChance", "spaUpgradeIntensity",
		"scenarioModMax", "scenarioModChance", "scenarioModBV", "autoconfigMunitions", "staticRATs",
	}
	atbDependents = append(atbDependents, BattleChanceIDs[:]...)

	return []Dependency{
		{Control: "destroyByMargin", When: IsTrue, Dependents: []string{"destroyMargin"}},
		{Control: "destroyByMargin", When: IsFalse, Dependents: []string{"destroyPartTarget"}},
		{Control: FieldCheckMaintenance, When: IsTrue, Dependents: []string{
			"maintenanceCycleDays", "maintenanceBonus", "useQualityMaintenance",
			"reverseQualityNames", "useUnofficialMaintenance", "logMaintenance",
		}},
		{Control: "usePlanetaryAcquisition", When: IsTrue, Dependents: []string{
			"maxJumpsPlanetaryAcquisition", "planetAcquisitionNoClanCrossover",
			"noClanPartsFromIS", "planetAcquisitionVerbose",
		}},
		{Control: "noClanPartsFromIS", When: IsFalse, Dependents: []string{"penaltyClanPartsFromIS"}},
		{Control: "limitByYear", When: IsTrue, Dependents: []string{"disallowExtinctStuff", "factionIntroDate"}},
		{Control: "allowCanonOnly", When: IsFalse, Dependents: []string{"allowCanonRefitOnly"}},
		{Control: FieldUseEdge, When: IsTrue, Dependents: []string{"useSupportEdge", "personnelLogEdgeGain", "edgeCost"}},
		{Control: FieldUseAbilities, When: IsTrue, Dependents: append([]string{"personnelLogAbilityGain"},
			ids("specialAbilityBonus", tiers)...)},
		{Control: FieldUseTactics, When: IsTrue, Dependents: ids("tacticsModifier", tiers)},
		{Control: "useArtillery", When: IsTrue, Dependents: []string{"artilleryProb", "artilleryBonus"}},
		{Control: "useRandomDeaths", When: IsTrue, Dependents: ageGroups},
		{Control: "useRandomMarriages", When: IsTrue, Dependents: []string{
			"minimumMarriageAge", "randomMarriageAgeRange", "randomMarriageChance",
		}},
		{Control: "useRandomProcreation", When: IsTrue, Dependents: []string{"procreationChance"}},
		{Control: "payForSalaries", When: IsTrue, Dependents: []string{
			"salaryCommissionMultiplier", "salaryEnlistedMultiplier", "salaryAntiMekMultiplier",
		}},
		{Control: "usePeacetimeCost", When: IsTrue, Dependents: []string{"useExtendedPartsModifier", "showPeacetimeCost"}},
		{Control: "equipmentContractBase", When: IsTrue, Dependents: []string{"equipmentContractPercent", "equipmentContractSaleValue"}},
		{Control: "assignPortraitOnRoleChange", When: IsTrue, Dependents: portraitRoles},
		{Control: "personnelMarketMethod", When: Equals(campaign.PersonnelMarketDylan.String()), Dependents: []string{"personnelMarketDylansWeight"}},
		{Control: "unitMarketMethod", When: NotEquals(campaign.UnitMarketNone.String()), Dependents: []string{
			"unitMarketRegionalMechVariations", "instantUnitMarketDelivery", "unitMarketReportRefresh",
		}},
		{Control: "contractMarketMethod", When: NotEquals(campaign.ContractMarketNone.String()), Dependents: []string{
			"contractSearchRadius", "variableContractLength", "contractMarketReportRefresh", "contractMaxSalvagePercentage",
		}},
		{Control: FieldUseAtB, When: IsTrue, Dependents: atbDependents},
		{Control: "useShareSystem", When: IsTrue, Dependents: []string{"sharesForAll"}},
		{Control: "useVehicles", When: IsTrue, Dependents: []string{
			"clanVehicles", "doubleVehicles", "adjustPlayerVehicles", "opForLanceTypeMechs",
			"opForLanceTypeMixed", "opForLanceTypeVehicles", "opForUsesVTOLs",
		}},
		{Control: "allowOpForAeros", When: IsTrue, Dependents: []string{"opForAeroChance"}},
		{Control: "allowOpForLocalUnits", When: IsTrue, Dependents: []string{"opForLocalUnitChance"}},
		{Control: "staticRATs", When: IsTrue, Dependents: []string{"ignoreRATEra", "rats"}},
	}
}
