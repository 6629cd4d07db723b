package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/config"
	"jordanella.com/campaign-options/internal/database"
	"jordanella.com/campaign-options/internal/faction"
	"jordanella.com/campaign-options/internal/options"
	"jordanella.com/campaign-options/internal/preset"
)

var unitNames = []string{
	"Gray Death Legion", "Kell Hounds", "Eridani Light Horse", "Snord's Irregulars",
	"Wolf's Dragoons", "Northwind Highlanders", "Hansen's Roughriders", "Black Thorns",
}

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := flag.String("db", cfg.DBPath, "Path to database file")
	presetDir := flag.String("presets", cfg.PresetDir, "Directory to write sample presets to")
	numCampaigns := flag.Int("campaigns", 3, "Number of campaigns to create")
	seed := flag.Int64("seed", 0, "Random seed (default: current time)")
	reset := flag.Bool("reset", false, "Delete every stored campaign before seeding")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Printf("Seeding database at: %s", *dbPath)

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations complete")

	if *reset {
		resetCampaigns(db)
	}

	for i := 0; i < *numCampaigns; i++ {
		log.Printf("Creating campaign %d/%d", i+1, *numCampaigns)
		seedCampaign(db, rng, i)
	}

	for _, p := range samplePresets() {
		path := filepath.Join(*presetDir, preset.FileName(p.Title))
		if err := p.Save(path); err != nil {
			log.Printf("Failed to write preset %q: %v", p.Title, err)
			continue
		}
		log.Printf("Wrote preset %s", path)
	}

	log.Println("Seeding complete")
}

func resetCampaigns(db *database.DB) {
	list, err := db.ListCampaigns()
	if err != nil {
		log.Fatalf("Failed to list campaigns: %v", err)
	}
	for _, c := range list {
		if err := db.DeleteCampaign(c.ID); err != nil {
			log.Fatalf("Failed to delete campaign %q: %v", c.Name, err)
		}
	}
	if err := db.Vacuum(); err != nil {
		log.Printf("Vacuum failed: %v", err)
	}
	log.Printf("Deleted %d existing campaigns", len(list))
}

func seedCampaign(db *database.DB, rng *rand.Rand, index int) {
	year := 3025 + rng.Intn(40)
	start := time.Date(year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)

	choosable := faction.Default().Choosable(year)
	code := "MERC"
	if len(choosable) > 0 {
		code = choosable[rng.Intn(len(choosable))].Code
	}

	c := campaign.New(unitNames[index%len(unitNames)], code, start)

	st := c.State()
	st.Options = st.Options.Clone()
	st.Options.UseTactics = rng.Intn(2) == 0
	st.Options.UseAtB = rng.Intn(2) == 0
	st.Options.MaintenanceCycleDays = 7 * (1 + rng.Intn(4))
	st.RankSystem = campaign.RankSystems[rng.Intn(len(campaign.RankSystems))]
	st.Rules = st.Rules.Merge(campaign.DeriveRules(st.Options))
	if err := c.Apply(st); err != nil {
		log.Printf("Failed to prepare campaign %q: %v", st.Name, err)
		return
	}

	id, err := db.SaveCampaign(c)
	if err != nil {
		log.Printf("Failed to save campaign %q: %v", st.Name, err)
		return
	}
	if _, err := db.RecordOptionsSnapshot(id, c.State(), []string{options.FieldUseTactics, options.FieldUseAtB, "maintenanceCycleDays"}); err != nil {
		log.Printf("Failed to record history for %q: %v", st.Name, err)
	}
	log.Printf("  %s (%s, %s) id=%d", st.Name, code, start.Format("2006-01-02"), id)
}

func samplePresets() []*preset.Preset {
	return []*preset.Preset{
		{
			Title:       "Against the Bot Standard",
			Description: "Against the Bot rules with monthly contract and unit markets",
			Options: map[string]string{
				options.FieldUseAtB:    "true",
				"useStratCon":          "false",
				"unitMarketMethod":     campaign.UnitMarketAtBMonthly.String(),
				"contractMarketMethod": campaign.ContractMarketAtBMonthly.String(),
				"useShareSystem":       "true",
			},
		},
		{
			Title:       "Green Mercenaries",
			Description: "A new mercenary unit with tactics and edge",
			Faction:     "MERC",
			RankSystem:  "MERC",
			Options: map[string]string{
				options.FieldUseTactics: "true",
				options.FieldUseEdge:    "true",
				"payForSalaries":        "true",
			},
			SkillPreferences: map[string]string{
				"overallRecruitBonus": "-1",
			},
		},
	}
}
