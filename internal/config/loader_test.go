package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/options"
)

func TestOptionsINIRoundTrip(t *testing.T) {
	s := options.DefaultSchema()
	src := options.DefaultRecords()
	src.Options.UseAtB = true
	src.Options.PersonnelMarketMethod = campaign.PersonnelMarketDylan
	src.Options.ClanPriceModifier = 1.75
	src.Options.RATs = []string{"Xotl", "FM: Mercenaries"}
	src.Options.AtBBattleChance = [4]int{35, 25, 50, 5}
	src.Skills.SecondSkillProb = 20

	path := filepath.Join(t.TempDir(), "options.ini")
	if err := SaveOptionsINI(s, src, path); err != nil {
		t.Fatalf("SaveOptionsINI: %v", err)
	}

	got, err := LoadOptionsINI(s, path)
	if err != nil {
		t.Fatalf("LoadOptionsINI: %v", err)
	}
	if !got.Options.Equal(src.Options) {
		t.Error("options differ after INI round trip")
	}
	if !got.Skills.Equal(src.Skills) {
		t.Error("skill preferences differ after INI round trip")
	}
}

func TestOptionsINIKeepsListItems(t *testing.T) {
	s := options.DefaultSchema()
	for _, rats := range [][]string{
		{},
		{"FM: Mercs, Rev 2"},
		{"FM: Mercs, Rev 2", "Xotl"},
		{" Xotl", "Total Warfare "},
		{"House Kurita #2", "Xotl; Revised"},
		{"Pirates\\"},
		{`Total "Warfare"`},
	} {
		src := options.DefaultRecords()
		src.Options.RATs = rats

		text, err := OptionsText(s, src)
		if err != nil {
			t.Fatalf("OptionsText: %v", err)
		}
		got := options.DefaultRecords()
		if err := DecodeOptions(s, []byte(text), got); err != nil {
			t.Fatalf("DecodeOptions(%q): %v", rats, err)
		}
		if len(got.Options.RATs) != len(rats) {
			t.Errorf("RATs = %q, want %q", got.Options.RATs, rats)
			continue
		}
		for i := range rats {
			if got.Options.RATs[i] != rats[i] {
				t.Errorf("RATs = %q, want %q", got.Options.RATs, rats)
				break
			}
		}
	}
}

func TestDecodeOptionsStripsScalarQuotes(t *testing.T) {
	s := options.DefaultSchema()
	doc := []byte(`
useTactics = "true"
maintenanceCycleDays = '21'
`)
	recs := options.DefaultRecords()
	if err := DecodeOptions(s, doc, recs); err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if !recs.Options.UseTactics {
		t.Error("quoted boolean not read")
	}
	if recs.Options.MaintenanceCycleDays != 21 {
		t.Errorf("maintenanceCycleDays = %d, want 21", recs.Options.MaintenanceCycleDays)
	}
}

func TestOptionsTextHasSectionPerTab(t *testing.T) {
	s := options.DefaultSchema()
	text, err := OptionsText(s, options.DefaultRecords())
	if err != nil {
		t.Fatalf("OptionsText: %v", err)
	}
	for _, tab := range s.Tabs() {
		if !strings.Contains(text, "["+tab.ID+"]") {
			t.Errorf("missing section %s", tab.ID)
		}
	}
	if strings.Contains(text, options.FieldBattleIntensity) {
		t.Error("derived intensity written to the file")
	}
}

func TestDecodeOptionsPartialAndFlat(t *testing.T) {
	s := options.DefaultSchema()
	doc := []byte(`
useTactics = true
useWarpDrive = true

[repairAndMaintenance]
maintenanceCycleDays = 21
`)
	recs := options.DefaultRecords()
	if err := DecodeOptions(s, doc, recs); err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if !recs.Options.UseTactics {
		t.Error("flat key not read")
	}
	if recs.Options.MaintenanceCycleDays != 21 {
		t.Errorf("maintenanceCycleDays = %d, want 21", recs.Options.MaintenanceCycleDays)
	}

	want := campaign.NewDefaultOptions()
	want.UseTactics = true
	want.MaintenanceCycleDays = 21
	if !recs.Options.Equal(want) {
		t.Error("keys missing from the file did not keep their defaults")
	}
}

func TestLoadOptionsINIRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	doc := "[repairAndMaintenance]\nmaintenanceCycleDays = 0\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	recs, err := LoadOptionsINI(options.DefaultSchema(), path)
	if !errors.Is(err, options.ErrOutOfRange) {
		t.Fatalf("LoadOptionsINI error = %v, want ErrOutOfRange", err)
	}
	if recs.Options != nil {
		t.Error("records returned alongside an error")
	}
}

func TestLoadOptionsINIMissingFile(t *testing.T) {
	_, err := LoadOptionsINI(options.DefaultSchema(), filepath.Join(t.TempDir(), "absent.ini"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
