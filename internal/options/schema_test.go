package options

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"jordanella.com/campaign-options/internal/campaign"
)

func TestDefaultSchemaDefaultsAreValid(t *testing.T) {
	s := DefaultSchema()
	recs := DefaultRecords()

	for _, f := range s.Fields() {
		if _, err := f.Check(f.Read(recs)); err != nil {
			t.Errorf("default for %s fails its own bounds: %v", f.ID, err)
		}
	}
}

func TestDefaultSchemaCoversEveryTab(t *testing.T) {
	s := DefaultSchema()
	want := []Tab{
		TabGeneral, TabRepair, TabSupplies, TabTechLimits, TabPersonnel, TabFinances,
		TabMercenary, TabExperience, TabSkillRandomization, TabNames, TabMarkets, TabAtB,
	}

	got := s.Tabs()
	if len(got) != len(want) {
		t.Fatalf("got %d tabs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tab %d = %v, want %v", i, got[i], want[i])
		}
		if len(s.FieldsIn(want[i])) == 0 {
			t.Errorf("tab %s has no fields", want[i].ID)
		}
	}
}

func TestGeneratedFieldIDs(t *testing.T) {
	s := DefaultSchema()
	for _, id := range []string{
		"atbBattleChanceFighting",
		"atbBattleChanceTraining",
		"randomDeathAgeGroupElder",
		"surnameWeightHyphenSpouse",
		"personnelMarketRandomRemovalTargetUltraGreen",
		"recruitBonusAerospacePilot",
		"usePortraitForRoleMechWarrior",
		"usedPartPriceMultiplierF",
		"tacticsModifierVeteran",
	} {
		if _, ok := s.Field(id); !ok {
			t.Errorf("expected field %s", id)
		}
	}
}

func TestFieldParse(t *testing.T) {
	s := DefaultSchema()
	tests := []struct {
		id      string
		text    string
		want    any
		wantErr error
	}{
		{id: "useTactics", text: "true", want: true},
		{id: "useTactics", text: "yes", wantErr: ErrFieldType},
		{id: "maintenanceCycleDays", text: " 30 ", want: 30},
		{id: "maintenanceCycleDays", text: "0", wantErr: ErrOutOfRange},
		{id: "clanPriceModifier", text: "2.5", want: 2.5},
		{id: "clanPriceModifier", text: "NaN", wantErr: ErrOutOfRange},
		{id: "techLevel", text: "advanced", want: "Advanced"},
		{id: "techLevel", text: "Futuristic", wantErr: ErrInvalidChoice},
		{id: "rats", text: "Xotl, Total Warfare", want: []string{"Xotl", "Total Warfare"}},
		{id: "rats", text: `"FM: Mercs, Rev 2",Xotl`, want: []string{"FM: Mercs, Rev 2", "Xotl"}},
		{id: "rats", text: `" Xotl"`, want: []string{" Xotl"}},
		{id: "rats", text: "", want: []string(nil)},
		{id: "rats", text: `"Xotl`, wantErr: ErrFieldType},
		{id: "rats", text: "Xotl\nTotal Warfare", wantErr: ErrFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.id+"="+tt.text, func(t *testing.T) {
			f, ok := s.Field(tt.id)
			if !ok {
				t.Fatalf("no field %s", tt.id)
			}
			got, err := f.Parse(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestListFormatParsesBack(t *testing.T) {
	f, ok := DefaultSchema().Field("rats")
	if !ok {
		t.Fatal("no field rats")
	}
	for _, items := range [][]string{
		{"Xotl", "FM: Mercenaries"},
		{"FM: Mercs, Rev 2", "Xotl"},
		{" Xotl", "Total Warfare "},
		{`Total "Warfare"`},
		{"", "Xotl", ""},
		{""},
	} {
		text := f.Format(items)
		got, err := f.Parse(text)
		if err != nil {
			t.Errorf("Parse(Format(%q)) = %q: %v", items, text, err)
			continue
		}
		if !reflect.DeepEqual(got, items) {
			t.Errorf("Parse(%q) = %q, want %q", text, got, items)
		}
	}

	if text := f.Format([]string{}); text != "" {
		t.Errorf("empty list formats as %q, want blank", text)
	}
}

func TestMapFieldWriteCreatesMap(t *testing.T) {
	s := DefaultSchema()
	f, _ := s.Field("surnameWeightSpouse")

	recs := DefaultRecords()
	recs.Options.SurnameWeights = nil
	if err := f.Write(recs, 42); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if recs.Options.SurnameWeights[campaign.SurnameSpouse] != 42 {
		t.Errorf("spouse weight = %d, want 42", recs.Options.SurnameWeights[campaign.SurnameSpouse])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := DefaultSchema()

	src := DefaultRecords()
	src.Options.UseAtB = true
	src.Options.TechLevel = campaign.TechLevelAdvanced
	src.Options.RandomMarriageChance = 0.00031
	src.Options.UsedPartPriceMultipliers[3] = 0.65
	src.Options.PersonnelMarketRandomRemovalTargets[campaign.SkillLevelElite] = 12
	src.Options.RATs = []string{"Xotl", "FM: Mercenaries"}
	src.Skills.RecruitBonuses[campaign.RoleTech] = 2
	src.Skills.TacticsModifiers[1] = -3

	values := s.ExportMap(src)
	if values["atbBattleIntensity"] != "" {
		t.Error("derived intensity should not be exported")
	}

	dst := DefaultRecords()
	unknown, err := s.ImportMap(dst, values)
	if err != nil {
		t.Fatalf("ImportMap: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown keys %v", unknown)
	}
	if !dst.Options.Equal(src.Options) {
		t.Error("options differ after export/import")
	}
	if !dst.Skills.Equal(src.Skills) {
		t.Error("skill preferences differ after export/import")
	}
}

func TestImportMapReportsUnknownKeys(t *testing.T) {
	s := DefaultSchema()
	recs := Records{Options: campaign.NewDefaultOptions()}

	unknown, err := s.ImportMap(recs, map[string]string{
		"useTactics":          "true",
		"useWarpDrive":        "true",
		"overallRecruitBonus": "2",
	})
	if err != nil {
		t.Fatalf("ImportMap: %v", err)
	}
	if strings.Join(unknown, ",") != "overallRecruitBonus,useWarpDrive" {
		t.Errorf("unknown = %v", unknown)
	}
	if !recs.Options.UseTactics {
		t.Error("known key was not imported")
	}
}

func TestNewSchemaRejectsCycles(t *testing.T) {
	a := boolField(TabGeneral, "a", "A", "", inOptions(func(o *campaign.Options) *bool { return &o.UseAtB }))
	b := boolField(TabGeneral, "b", "B", "", inOptions(func(o *campaign.Options) *bool { return &o.UseStratCon }))

	_, err := NewSchema([]Field{a, b}, []Dependency{
		{Control: "a", When: IsTrue, Dependents: []string{"b"}},
		{Control: "b", When: IsTrue, Dependents: []string{"a"}},
	})
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}

	_, err = NewSchema([]Field{a}, []Dependency{{Control: "a", When: IsTrue, Dependents: []string{"missing"}}})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}
