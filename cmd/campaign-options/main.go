package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"
	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/config"
	"jordanella.com/campaign-options/internal/database"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/faction"
	"jordanella.com/campaign-options/internal/gui"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/options"
)

func main() {
	campaignID := flag.Int64("campaign", 0, "ID of the campaign to edit (default: first stored campaign)")
	newName := flag.String("new", "", "Create a new campaign with this name")
	factionCode := flag.String("faction", "MERC", "Faction code for a new campaign")
	date := flag.String("date", "3025-01-01", "Start date for a new campaign (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger("Main").SetMinLevel(cfg.Level())
	if err := os.MkdirAll(cfg.LogDir, 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(cfg.LogDir, "campaign-options.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			logger.AddOutput(f)
		}
	}

	if err := os.MkdirAll(cfg.PresetDir, 0755); err != nil {
		log.Fatalf("Failed to create preset directory: %v", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetLogger(logger.Named("Database"))

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	c, err := openCampaign(db, *campaignID, *newName, *factionCode, *date)
	if err != nil {
		log.Fatalf("Failed to open campaign: %v", err)
	}
	logger.InfoWithContext("Editing campaign", map[string]interface{}{
		"campaign_id": c.ID(),
		"campaign":    c.Name(),
		"db":          cfg.DBPath,
	})

	bus := events.NewEventBus(100)
	defer bus.Stop()

	eventLogger, err := logging.NewEventLogger(bus, cfg.LogDir)
	if err != nil {
		logger.Warn(fmt.Sprintf("Event log disabled: %v", err))
	} else {
		defer eventLogger.Close()
	}

	editor := options.NewEditor(faction.Default(), bus, logger.Named("Editor"))
	if err := editor.Open(c); err != nil {
		log.Fatalf("Failed to open editor: %v", err)
	}

	if cfg.OptionsFile != "" {
		recs, err := config.LoadOptionsINI(editor.Schema(), cfg.OptionsFile)
		if err != nil {
			logger.Error("Failed to import options file", err)
		} else if err := editor.LoadRecords(recs); err != nil {
			logger.Error("Failed to show imported options", err)
		} else {
			logger.Info("Imported options from " + cfg.OptionsFile + "; press OK to keep them")
		}
	}

	myApp := app.NewWithID("com.jordanella.campaign-options")
	myApp.Settings().SetTheme(&gui.CampaignTheme{})

	mainWindow := myApp.NewWindow("Campaign Options - " + c.Name())
	mainWindow.SetMaster()

	controller := gui.NewController(myApp, mainWindow, editor, db, bus, cfg.PresetDir, logger.Named("GUI"))
	if err := controller.Run(); err != nil {
		log.Fatalf("Failed to start GUI: %v", err)
	}
}

// openCampaign loads the requested campaign, falls back to the first
// stored one, and creates a new campaign when asked or when none exist
func openCampaign(db *database.DB, id int64, newName, factionCode, date string) (*campaign.Campaign, error) {
	if id > 0 {
		return db.LoadCampaign(id)
	}

	if newName == "" {
		list, err := db.ListCampaigns()
		if err != nil {
			return nil, err
		}
		if len(list) > 0 {
			return db.LoadCampaign(list[0].ID)
		}
		newName = "New Campaign"
	}

	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", date, err)
	}
	if _, err := faction.Default().Lookup(factionCode); err != nil {
		return nil, errors.Join(fmt.Errorf("unknown faction %q", factionCode), err)
	}

	c := campaign.New(newName, factionCode, start)
	if _, err := db.SaveCampaign(c); err != nil {
		return nil, err
	}
	return c, nil
}
