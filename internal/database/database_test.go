package database

import (
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
	"time"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/skills"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetLogger(logging.NewLoggerTo("Database", io.Discard))

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func customCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c := campaign.New("Kell Hounds", "LA", time.Date(3025, 8, 20, 0, 0, 0, 0, time.UTC))

	st := c.State()
	st.Camouflage = campaign.Camouflage{Category: "Lyran", Filename: "kell_red.png"}
	st.UnitIcon = campaign.UnitIcon{Filename: "hound.png"}
	st.Colour = color.NRGBA{R: 200, G: 16, B: 46, A: 255}
	st.RankSystem = "LCAF"
	st.Options = st.Options.Clone()
	st.Options.UseTactics = true
	st.Options.UseAtB = true
	st.Options.RATs = []string{"Xotl"}
	st.SkillPreferences = st.SkillPreferences.Clone()
	st.SkillPreferences.OverallRecruitBonus = 2
	st.Rules = st.Rules.Merge(campaign.DeriveRules(st.Options))
	st.Rules["double_blind"] = "true"
	st.Abilities = st.Abilities.Clone()
	if err := st.Abilities.SetXPCost("sniper", 80); err != nil {
		t.Fatal(err)
	}
	st.SkillTable = st.SkillTable.Clone()
	if err := st.SkillTable.SetCosts("Tactics", [skills.NumLevels]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}); err != nil {
		t.Fatal(err)
	}

	if err := c.Apply(st); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return c
}

func TestDatabaseInitialization(t *testing.T) {
	db := openTestDB(t)

	version, err := db.GetVersion()
	if err != nil {
		t.Fatalf("Failed to get version: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("Expected version %d, got %d", LatestVersion(), version)
	}

	if _, err := os.Stat(db.Path()); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// A second run has nothing to apply
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Re-running migrations failed: %v", err)
	}
}

func TestSaveAndLoadCampaign(t *testing.T) {
	db := openTestDB(t)
	c := customCampaign(t)

	id, err := db.SaveCampaign(c)
	if err != nil {
		t.Fatalf("Failed to save campaign: %v", err)
	}
	if id == 0 || c.ID() != id {
		t.Fatalf("campaign id not assigned: saved %d, campaign has %d", id, c.ID())
	}

	loaded, err := db.LoadCampaign(id)
	if err != nil {
		t.Fatalf("Failed to load campaign: %v", err)
	}

	want := c.State()
	got := loaded.State()
	if got.Name != want.Name || got.FactionCode != want.FactionCode || got.RankSystem != want.RankSystem {
		t.Errorf("header mismatch: got %s/%s/%s", got.Name, got.FactionCode, got.RankSystem)
	}
	if !got.Date.Equal(want.Date) {
		t.Errorf("date = %v, want %v", got.Date, want.Date)
	}
	if got.Colour != want.Colour || got.Camouflage != want.Camouflage || got.UnitIcon != want.UnitIcon {
		t.Error("appearance not restored")
	}
	if !got.Options.Equal(want.Options) {
		t.Error("options not restored")
	}
	if !got.SkillPreferences.Equal(want.SkillPreferences) {
		t.Error("skill preferences not restored")
	}
	if !reflect.DeepEqual(got.Rules, want.Rules) {
		t.Errorf("rules = %v, want %v", got.Rules, want.Rules)
	}
	if got.Abilities["sniper"].XPCost != 80 || len(got.Abilities) != len(want.Abilities) {
		t.Error("abilities not restored")
	}
	if !reflect.DeepEqual(skills.CostsArray(got.SkillTable), skills.CostsArray(want.SkillTable)) {
		t.Error("skill table not restored")
	}
}

func TestSaveCampaignUpdatesExistingRow(t *testing.T) {
	db := openTestDB(t)
	c := customCampaign(t)

	first, err := db.SaveCampaign(c)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	st := c.State()
	st.Name = "Kell Hounds (Second Battalion)"
	if err := c.Apply(st); err != nil {
		t.Fatal(err)
	}
	second, err := db.SaveCampaign(c)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first != second {
		t.Errorf("second save created a new row: %d then %d", first, second)
	}

	list, err := db.ListCampaigns()
	if err != nil {
		t.Fatalf("ListCampaigns: %v", err)
	}
	if len(list) != 1 || list[0].Name != st.Name {
		t.Errorf("list = %+v", list)
	}
}

func TestListCampaignsOrderedByName(t *testing.T) {
	db := openTestDB(t)
	date := time.Date(3050, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"wolf's Dragoons", "Eridani Light Horse", "Black Widows"} {
		if _, err := db.SaveCampaign(campaign.New(name, "MERC", date)); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	list, err := db.ListCampaigns()
	if err != nil {
		t.Fatalf("ListCampaigns: %v", err)
	}
	var names []string
	for _, s := range list {
		names = append(names, s.Name)
		if !s.Date.Equal(date) {
			t.Errorf("%s date = %v", s.Name, s.Date)
		}
	}
	want := []string{"Black Widows", "Eridani Light Horse", "wolf's Dragoons"}
	if !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestLoadMissingCampaign(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadCampaign(42); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("LoadCampaign(42) = %v, want ErrCampaignNotFound", err)
	}
	if err := db.DeleteCampaign(42); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("DeleteCampaign(42) = %v, want ErrCampaignNotFound", err)
	}
}

func TestOptionsHistory(t *testing.T) {
	db := openTestDB(t)
	c := customCampaign(t)
	id, err := db.SaveCampaign(c)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.RecordOptionsSnapshot(id, c.State(), nil); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}

	st := c.State()
	st.Options = st.Options.Clone()
	st.Options.UseEdge = true
	if err := c.Apply(st); err != nil {
		t.Fatal(err)
	}
	if _, err := db.RecordOptionsSnapshot(id, c.State(), []string{"useEdge"}); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	history, err := db.ListOptionsHistory(id, 0)
	if err != nil {
		t.Fatalf("ListOptionsHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(history))
	}
	if !slices.Equal(history[0].ChangedFields, []string{"useEdge"}) || history[1].ChangedFields != nil {
		t.Errorf("changed fields = %v / %v", history[0].ChangedFields, history[1].ChangedFields)
	}

	recs, err := SnapshotRecords(history[0])
	if err != nil {
		t.Fatalf("SnapshotRecords: %v", err)
	}
	if !recs.Options.Equal(st.Options) {
		t.Error("newest snapshot does not hold the committed options")
	}

	limited, err := db.ListOptionsHistory(id, 1)
	if err != nil || len(limited) != 1 || limited[0].ID != history[0].ID {
		t.Errorf("limited history = %+v, %v", limited, err)
	}

	if err := db.DeleteCampaign(id); err != nil {
		t.Fatalf("DeleteCampaign: %v", err)
	}
	if left, _ := db.ListOptionsHistory(id, 0); len(left) != 0 {
		t.Errorf("history survived campaign deletion: %d rows", len(left))
	}
}

func TestAutoSave(t *testing.T) {
	db := openTestDB(t)
	bus := events.NewEventBus(10)
	defer bus.Stop()

	saved := make(chan events.Event, 1)
	bus.Subscribe(events.EventTypeCampaignSaved, func(e events.Event) { saved <- e })

	c := customCampaign(t)
	saver := db.AutoSave(bus, c)
	defer saver.Stop()

	bus.Publish(events.NewOptionsChangedEvent(c.Name(), []string{"useTactics"}))

	select {
	case e := <-saved:
		if e.Data["campaign_id"] != c.ID() {
			t.Errorf("saved event id = %v, want %d", e.Data["campaign_id"], c.ID())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the campaign to be saved")
	}

	history, err := db.ListOptionsHistory(c.ID(), 0)
	if err != nil {
		t.Fatalf("ListOptionsHistory: %v", err)
	}
	if len(history) != 1 || !slices.Equal(history[0].ChangedFields, []string{"useTactics"}) {
		t.Errorf("history = %+v", history)
	}
}

func TestAutoSaveRetarget(t *testing.T) {
	db := openTestDB(t)
	bus := events.NewEventBus(10)
	defer bus.Stop()

	saved := make(chan events.Event, 1)
	bus.Subscribe(events.EventTypeCampaignSaved, func(e events.Event) { saved <- e })

	first := customCampaign(t)
	second := campaign.New("Wolf's Dragoons", "MERC", time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC))
	if _, err := db.SaveCampaign(second); err != nil {
		t.Fatalf("SaveCampaign: %v", err)
	}

	saver := db.AutoSave(bus, first)
	defer saver.Stop()
	saver.Retarget(second)
	if saver.Campaign() != second {
		t.Fatal("Campaign() does not return the retargeted campaign")
	}

	bus.Publish(events.NewOptionsChangedEvent(second.Name(), []string{"useEdge"}))

	select {
	case e := <-saved:
		if e.Data["campaign_id"] != second.ID() {
			t.Errorf("saved event id = %v, want %d", e.Data["campaign_id"], second.ID())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the campaign to be saved")
	}

	if history, _ := db.ListOptionsHistory(second.ID(), 0); len(history) != 1 {
		t.Errorf("second campaign history = %d rows, want 1", len(history))
	}
	if history, _ := db.ListOptionsHistory(first.ID(), 0); len(history) != 0 {
		t.Errorf("first campaign history = %d rows, want 0", len(history))
	}
}

func TestColourFormat(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 255, A: 128}
	text := formatColour(c)
	if text != "#0102ff80" {
		t.Errorf("formatColour = %q", text)
	}
	back, err := parseColour(text)
	if err != nil || back != c {
		t.Errorf("parseColour(%q) = %v, %v", text, back, err)
	}
	for _, bad := range []string{"", "0102ff80", "#0102ff", "#zz02ff80"} {
		if _, err := parseColour(bad); err == nil {
			t.Errorf("parseColour(%q) accepted", bad)
		}
	}
}

func TestBackupAndStats(t *testing.T) {
	db := openTestDB(t)

	empty, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats on empty store: %v", err)
	}
	if empty.Campaigns != 0 || empty.Snapshots != 0 || !empty.LastSaved.IsZero() || empty.MostEdited != "" {
		t.Errorf("empty store stats = %+v", empty)
	}

	c := customCampaign(t)
	id, err := db.SaveCampaign(c)
	if err != nil {
		t.Fatalf("SaveCampaign: %v", err)
	}
	other := campaign.New("Wolf's Dragoons", "MERC", time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC))
	otherID, err := db.SaveCampaign(other)
	if err != nil {
		t.Fatalf("SaveCampaign: %v", err)
	}
	for _, changed := range [][]string{{"useTactics"}, {"useAtB", "rats"}} {
		if _, err := db.RecordOptionsSnapshot(id, c.State(), changed); err != nil {
			t.Fatalf("RecordOptionsSnapshot: %v", err)
		}
	}
	if _, err := db.RecordOptionsSnapshot(otherID, other.State(), []string{"useEdge"}); err != nil {
		t.Fatalf("RecordOptionsSnapshot: %v", err)
	}

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Campaigns != 2 || stats.Snapshots != 3 {
		t.Errorf("counts = %d campaigns, %d snapshots, want 2 and 3", stats.Campaigns, stats.Snapshots)
	}
	if stats.MostEdited != "Kell Hounds" || stats.MostEditedSnapshots != 2 {
		t.Errorf("most edited = %q with %d, want Kell Hounds with 2", stats.MostEdited, stats.MostEditedSnapshots)
	}
	if stats.LastSaved.IsZero() {
		t.Error("last save time missing")
	}
	if stats.FileSize <= 0 {
		t.Errorf("file size = %d", stats.FileSize)
	}

	if err := db.Vacuum(); err != nil {
		t.Fatalf("Vacuum: %v", err)
	}

	backupPath := filepath.Join(t.TempDir(), "backups", "campaigns.db")
	if err := db.Backup(backupPath); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	backup, err := Open(backupPath)
	if err != nil {
		t.Fatalf("Open backup: %v", err)
	}
	defer backup.Close()
	loaded, err := backup.LoadCampaign(id)
	if err != nil {
		t.Fatalf("LoadCampaign from backup: %v", err)
	}
	if loaded.Name() != "Kell Hounds" {
		t.Errorf("backup name = %q", loaded.Name())
	}

	if err := db.Backup(backupPath); err == nil {
		t.Error("backup overwrote an existing file")
	}
}
