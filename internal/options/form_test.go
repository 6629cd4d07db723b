package options

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"jordanella.com/campaign-options/internal/atb"
	"jordanella.com/campaign-options/internal/campaign"
)

func customOptions() *campaign.Options {
	o := campaign.NewDefaultOptions()
	o.UseTactics = true
	o.MaintenanceCycleDays = 14
	o.TechLevel = campaign.TechLevelAdvanced
	o.AcquisitionSkill = campaign.AcquisitionSkillScrounge
	o.PersonnelMarketMethod = campaign.PersonnelMarketDylan
	o.RandomDeathAgeGroups[campaign.AgeGroupAdult] = true
	o.SurnameWeights[campaign.SurnameSpouse] = 42
	o.UsedPartPriceMultipliers[2] = 0.45
	o.UsePortraitForRole[campaign.RoleDoctor] = true
	o.AtBBattleChance = [4]int{30, 15, 45, 5}
	o.RATs = []string{"Xotl", "FM: Mercenaries"}
	return o
}

func TestLoadCommitRoundTrip(t *testing.T) {
	want := customOptions()
	prefs := campaign.NewDefaultRandomSkillPreferences()
	prefs.OverallRecruitBonus = 3
	prefs.RecruitBonuses[campaign.RoleSoldier] = -1

	snapshot := want.Clone()

	form := NewForm(DefaultSchema())
	if err := form.Load(Records{Options: want, Skills: prefs}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	staged, err := form.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if !staged.Options.Equal(want) {
		t.Error("committed options differ from the loaded record")
	}
	if !staged.Skills.Equal(prefs) {
		t.Error("committed skill preferences differ from the loaded record")
	}
	if staged.Options == want || staged.Skills == prefs {
		t.Error("commit must stage into copies")
	}
	if !want.Equal(snapshot) {
		t.Error("commit modified the loaded record")
	}
	if !reflect.DeepEqual(campaign.DeriveRules(staged.Options), campaign.DeriveRules(want)) {
		t.Error("derived rules differ")
	}
	if changed := form.Changed(); len(changed) != 0 {
		t.Errorf("Changed() after plain load = %v, want none", changed)
	}

	lists := []struct {
		name string
		rats []string
	}{
		{"nil list", nil},
		{"empty list", []string{}},
		{"comma in item", []string{"FM: Mercs, Rev 2", "Xotl"}},
		{"leading spaces", []string{" Xotl", "  FM: Mercenaries"}},
		{"trailing space and quote", []string{"Xotl ", `Total "Warfare"`}},
		{"single blank item", []string{""}},
	}
	for _, tc := range lists {
		t.Run(tc.name, func(t *testing.T) {
			o := campaign.NewDefaultOptions()
			o.RATs = tc.rats

			form := NewForm(DefaultSchema())
			if err := form.Load(Records{Options: o, Skills: prefs}); err != nil {
				t.Fatalf("Load: %v", err)
			}
			staged, err := form.Commit()
			if err != nil {
				t.Fatalf("Commit: %v", err)
			}
			if !reflect.DeepEqual(staged.Options.RATs, tc.rats) {
				t.Errorf("RATs after commit = %#v, want %#v", staged.Options.RATs, tc.rats)
			}

			// Editing through the text box gives back the same items
			text, err := form.Text("rats")
			if err != nil {
				t.Fatalf("Text: %v", err)
			}
			if err := form.SetText("rats", text); err != nil {
				t.Fatalf("SetText(%q): %v", text, err)
			}
			staged, err = form.Commit()
			if err != nil {
				t.Fatalf("Commit: %v", err)
			}
			if !staged.Options.Equal(o) {
				t.Errorf("RATs after text edit = %#v, want %#v", staged.Options.RATs, tc.rats)
			}
		})
	}
}

func TestUseTacticsOnlyChangesUseTactics(t *testing.T) {
	form := NewForm(DefaultSchema())
	if err := form.Load(DefaultRecords()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := form.Set(FieldUseTactics, true); err != nil {
		t.Fatalf("Set: %v", err)
	}

	staged, err := form.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	want := campaign.NewDefaultOptions()
	want.UseTactics = true
	if !staged.Options.Equal(want) {
		t.Error("more than useTactics changed")
	}
	if !staged.Options.UseTactics {
		t.Error("useTactics not committed")
	}
	if got := form.Changed(); !slices.Equal(got, []string{FieldUseTactics}) {
		t.Errorf("Changed() = %v, want [useTactics]", got)
	}
}

func TestSetRejectsBadValues(t *testing.T) {
	form := NewForm(DefaultSchema())

	tests := []struct {
		name    string
		id      string
		value   any
		wantErr error
	}{
		{"unknown field", "useHyperdrive", true, ErrUnknownField},
		{"wrong type", FieldUseTactics, 1, ErrFieldType},
		{"below minimum", "maintenanceCycleDays", 0, ErrOutOfRange},
		{"above maximum", BattleChanceIDs[0], 101, ErrOutOfRange},
		{"bad choice", "unitMarketMethod", "Weekly", ErrInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := form.Set(tt.id, tt.value); !errors.Is(err, tt.wantErr) {
				t.Errorf("Set(%s, %v) error = %v, want %v", tt.id, tt.value, err, tt.wantErr)
			}
		})
	}

	if form.Int("maintenanceCycleDays") != 7 {
		t.Error("rejected value was stored")
	}
}

func TestIntensityDrivesChances(t *testing.T) {
	form := NewForm(DefaultSchema())

	var notified []string
	form.OnChange(func(ids []string) { notified = append(notified, ids...) })

	if err := form.Set(FieldBattleIntensity, 2.0); err != nil {
		t.Fatalf("Set intensity: %v", err)
	}
	want := atb.BattleChances(2.0)
	for i, id := range BattleChanceIDs {
		if got := form.Int(id); got != want[i] {
			t.Errorf("%s = %d, want %d", id, got, want[i])
		}
		if !slices.Contains(notified, id) {
			t.Errorf("listener not told about %s", id)
		}
	}

	staged, err := form.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if staged.Options.AtBBattleChance != want {
		t.Errorf("committed chances = %v, want %v", staged.Options.AtBBattleChance, want)
	}
}

func TestChanceDrivesIntensity(t *testing.T) {
	form := NewForm(DefaultSchema())
	if form.Float(FieldBattleIntensity) != 1.0 {
		t.Fatalf("default intensity = %v, want 1.0", form.Float(FieldBattleIntensity))
	}

	if err := form.SetText(BattleChanceIDs[0], "0"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	want := atb.BattleIntensity([4]int{0, 20, 60, 10})
	if got := form.Float(FieldBattleIntensity); got != want {
		t.Errorf("intensity = %v, want %v", got, want)
	}
}

func TestEnablementIsTransitive(t *testing.T) {
	form := NewForm(DefaultSchema())

	if form.Enabled("sharesForAll") {
		t.Error("sharesForAll enabled while AtB is off")
	}
	if !form.Enabled(FieldUseAtB) {
		t.Error("ungated field reported disabled")
	}

	form.Set("useShareSystem", true)
	if form.Enabled("sharesForAll") {
		t.Error("sharesForAll enabled while its parent control is disabled")
	}

	form.Set(FieldUseAtB, true)
	if !form.Enabled("sharesForAll") {
		t.Error("sharesForAll disabled with AtB and shares on")
	}

	form.Set("useShareSystem", false)
	if form.Enabled("sharesForAll") {
		t.Error("sharesForAll enabled with shares off")
	}
}

func TestChoicePredicates(t *testing.T) {
	form := NewForm(DefaultSchema())

	if form.Enabled("personnelMarketDylansWeight") {
		t.Error("Dylan's weight enabled for the random market")
	}
	form.Set("personnelMarketMethod", campaign.PersonnelMarketDylan.String())
	if !form.Enabled("personnelMarketDylansWeight") {
		t.Error("Dylan's weight disabled for Dylan's method")
	}

	if form.Enabled("contractSearchRadius") {
		t.Error("contract fields enabled without a contract market")
	}
	form.Set("contractMarketMethod", campaign.ContractMarketAtBMonthly.String())
	if !form.Enabled("contractSearchRadius") {
		t.Error("contract fields disabled with a contract market")
	}
}

func TestLoadFallsBackToRetainedRecords(t *testing.T) {
	form := NewForm(DefaultSchema())
	if err := form.Load(Records{}); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("Load with nothing retained: %v, want ErrNoRecords", err)
	}

	opts := customOptions()
	if err := form.Load(Records{Options: opts}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	form.Set("maintenanceCycleDays", 30)

	prefs := campaign.NewDefaultRandomSkillPreferences()
	prefs.AntiMekProb = 55
	if err := form.Load(Records{Skills: prefs}); err != nil {
		t.Fatalf("Load skills only: %v", err)
	}

	if form.Int("maintenanceCycleDays") != 14 {
		t.Errorf("options not reloaded from retained record: %d", form.Int("maintenanceCycleDays"))
	}
	if form.Int("antiMekProb") != 55 {
		t.Errorf("antiMekProb = %d, want 55", form.Int("antiMekProb"))
	}
}

func TestCommitFailureTouchesNothing(t *testing.T) {
	opts := campaign.NewDefaultOptions()
	opts.MaintenanceCycleDays = 0

	form := NewForm(DefaultSchema())
	if err := form.Load(Records{Options: opts}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	form.Set(FieldUseTactics, true)

	staged, err := form.Commit()
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Commit error = %v, want ErrOutOfRange", err)
	}
	if staged.Options != nil {
		t.Error("failed commit returned records")
	}
	if opts.UseTactics {
		t.Error("failed commit modified the loaded record")
	}
}
