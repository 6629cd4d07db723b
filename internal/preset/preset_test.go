package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jordanella.com/campaign-options/internal/skills"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
title: Green Mercenaries
description: Fresh unit on a shoestring budget
faction: MERC
options:
  useAtB: "true"
  maintenanceCycleDays: "14"
skillCosts:
  Gunnery/Mech: [20, 10, 10, 12, 12, 14, 14, 16, 16, 18, 24]
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Title != "Green Mercenaries" || p.Faction != "MERC" {
		t.Errorf("unexpected header %+v", p)
	}
	if p.Options["maintenanceCycleDays"] != "14" {
		t.Errorf("options = %v", p.Options)
	}
	if got := p.SkillCosts["Gunnery/Mech"]; len(got) != skills.NumLevels || got[10] != 24 {
		t.Errorf("skill costs = %v", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		want   string
	}{
		{"no title", Preset{Title: "  "}, "no title"},
		{"short cost list", Preset{Title: "x", SkillCosts: map[string][]int{"Tactics": {1, 2, 3}}}, "expected 11 costs"},
		{
			"dangling prerequisite",
			Preset{Title: "x", SpecialAbilities: []skills.SpecialAbility{
				{Name: "melee_master", Prerequisites: []string{"melee_specialist"}},
			}},
			"unknown special ability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "veterans.yaml")
	p := &Preset{
		Title:            "Veterans",
		RankSystem:       "AFFS",
		SkillPreferences: map[string]string{"overallRecruitBonus": "1"},
		SpecialAbilities: skills.DefaultAbilities().List(),
	}
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.Path() != path {
		t.Errorf("Path() = %q after save", p.Path())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.RankSystem != "AFFS" || loaded.SkillPreferences["overallRecruitBonus"] != "1" {
		t.Errorf("loaded preset lost fields: %+v", loaded)
	}
	if len(loaded.SpecialAbilities) != len(p.SpecialAbilities) {
		t.Errorf("got %d abilities, want %d", len(loaded.SpecialAbilities), len(p.SpecialAbilities))
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "title: zulu\n")
	writeFile(t, dir, "a.yml", "title: Alpha\n")
	writeFile(t, dir, "notes.txt", "title: ignored\n")
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}
	if presets[0].Title != "Alpha" || presets[1].Title != "zulu" {
		t.Errorf("order = %s, %s", presets[0].Title, presets[1].Title)
	}
}

func TestLoadDirMissing(t *testing.T) {
	presets, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil || presets != nil {
		t.Errorf("LoadDir(missing) = %v, %v; want nil, nil", presets, err)
	}
}

func TestLoadDirReportsBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "title: [unterminated\n")

	_, err := LoadDir(dir)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("expected error naming the file, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Green Mercenaries": "green_mercenaries.yaml",
		"  AtB-Heavy ":      "atb_heavy.yaml",
		"Kell's Hounds!":    "kells_hounds.yaml",
		"???":               "preset.yaml",
	}
	for title, want := range tests {
		if got := FileName(title); got != want {
			t.Errorf("FileName(%q) = %q, want %q", title, got, want)
		}
	}
}
