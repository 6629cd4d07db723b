package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"jordanella.com/campaign-options/internal/config"
	"jordanella.com/campaign-options/internal/database"
	"jordanella.com/campaign-options/internal/options"
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := flag.String("db", cfg.DBPath, "Path to database file")
	campaignID := flag.Int64("campaign", 0, "Campaign to export (lists campaigns when omitted)")
	out := flag.String("out", "", "INI file to write (default: print to stdout)")
	history := flag.Int("history", 0, "Also list this many recent option changes")
	stats := flag.Bool("stats", false, "Print row counts of the campaign store and exit")
	backup := flag.String("backup", "", "Copy the database to this path before exporting")
	flag.Parse()

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if *backup != "" {
		if err := db.Backup(*backup); err != nil {
			log.Fatalf("Failed to back up database: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Backed up %s to %s\n", db.Path(), *backup)
	}

	if *stats {
		printStats(db)
		return
	}

	if *campaignID == 0 {
		listCampaigns(db)
		return
	}

	c, err := db.LoadCampaign(*campaignID)
	if err != nil {
		log.Fatalf("Failed to load campaign: %v", err)
	}
	st := c.State()
	schema := options.DefaultSchema()
	recs := options.Records{Options: st.Options, Skills: st.SkillPreferences}

	if *out == "" {
		text, err := config.OptionsText(schema, recs)
		if err != nil {
			log.Fatalf("Failed to encode options: %v", err)
		}
		fmt.Print(text)
	} else {
		if err := config.SaveOptionsINI(schema, recs, *out); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote options of %q to %s\n", st.Name, *out)
	}

	if *history > 0 {
		listHistory(db, c.ID(), *history)
	}
}

func listCampaigns(db *database.DB) {
	list, err := db.ListCampaigns()
	if err != nil {
		log.Fatalf("Failed to list campaigns: %v", err)
	}
	if len(list) == 0 {
		fmt.Println("No campaigns stored")
		return
	}

	fmt.Println("=== Campaigns ===")
	for _, c := range list {
		fmt.Printf("%4d  %-28s %-6s %s  (updated %s)\n",
			c.ID, c.Name, c.FactionCode, c.Date.Format("2006-01-02"), humanize.Time(c.UpdatedAt))
	}
	fmt.Println()
	fmt.Println("Usage: export-options -campaign <id> [-out <file.ini>] [-history <n>]")
}

func printStats(db *database.DB) {
	version, err := db.GetVersion()
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}
	stats, err := db.GetStats()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}

	fmt.Printf("Database: %s (schema v%d, %s)\n", db.Path(), version, humanize.Bytes(uint64(stats.FileSize)))
	fmt.Printf("  Campaigns:  %s\n", humanize.Comma(stats.Campaigns))
	fmt.Printf("  Snapshots:  %s\n", humanize.Comma(stats.Snapshots))
	if !stats.LastSaved.IsZero() {
		fmt.Printf("  Last saved: %s\n", humanize.Time(stats.LastSaved))
	}
	if stats.MostEdited != "" {
		fmt.Printf("  Most edited: %s (%s snapshots)\n", stats.MostEdited, humanize.Comma(stats.MostEditedSnapshots))
	}
}

func listHistory(db *database.DB, campaignID int64, limit int) {
	snapshots, err := db.ListOptionsHistory(campaignID, limit)
	if err != nil {
		log.Fatalf("Failed to list history: %v", err)
	}

	fmt.Fprintln(os.Stderr, "=== Recent Changes ===")
	for _, s := range snapshots {
		fmt.Fprintf(os.Stderr, "%4d  %-14s %s\n", s.ID, humanize.Time(s.RecordedAt), strings.Join(s.ChangedFields, ", "))
	}
}
