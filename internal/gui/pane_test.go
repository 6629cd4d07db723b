package gui

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/campaign-options/internal/atb"
	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/faction"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/options"
	"jordanella.com/campaign-options/internal/preset"
	"jordanella.com/campaign-options/internal/skills"
)

type stubPicker struct {
	path string
	err  error
}

func (s *stubPicker) Load(string, FileFilter) (string, error) { return s.path, s.err }
func (s *stubPicker) Save(string, FileFilter) (string, error) { return s.path, s.err }

type paneFixture struct {
	pane      *OptionsPane
	campaign  *campaign.Campaign
	presetDir string
	picker    *stubPicker
}

func newPaneFixture(t *testing.T) *paneFixture {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	c := campaign.New("Gray Death Legion", "MERC", time.Date(3025, 6, 1, 0, 0, 0, 0, time.UTC))
	e := options.NewEditor(faction.Default(), nil, logging.NewLoggerTo("Editor", io.Discard))
	if err := e.Open(c); err != nil {
		t.Fatalf("Open: %v", err)
	}

	dir := t.TempDir()
	picker := &stubPicker{err: ErrPickCancelled}
	p := NewOptionsPane(e, w, nil, dir, logging.NewLoggerTo("OptionsPane", io.Discard))
	p.SetFilePicker(picker)
	w.SetContent(p.Build())

	return &paneFixture{pane: p, campaign: c, presetDir: dir, picker: picker}
}

func (fx *paneFixture) check(t *testing.T, id string) *widget.Check {
	t.Helper()
	fw, ok := fx.pane.fields[id]
	if !ok {
		t.Fatalf("no control for %s", id)
	}
	return fw.control.(*widget.Check)
}

func (fx *paneFixture) entry(t *testing.T, id string) *widget.Entry {
	t.Helper()
	fw, ok := fx.pane.fields[id]
	if !ok {
		t.Fatalf("no control for %s", id)
	}
	return fw.control.(*widget.Entry)
}

func TestPaneHasPagePerTab(t *testing.T) {
	fx := newPaneFixture(t)
	tabs := fx.pane.editor.Schema().Tabs()

	items := fx.pane.tabs.Items
	if len(items) != len(tabs)+2 {
		t.Fatalf("got %d pages, want %d", len(items), len(tabs)+2)
	}
	if items[0].Text != options.TabGeneral.Title {
		t.Errorf("first page = %q, want General", items[0].Text)
	}
	if items[len(items)-1].Text != "Presets" {
		t.Errorf("last page = %q, want Presets", items[len(items)-1].Text)
	}
	for _, f := range fx.pane.editor.Schema().Fields() {
		if _, ok := fx.pane.fields[f.ID]; !ok {
			t.Errorf("field %s has no control", f.ID)
		}
	}
}

func TestCheckWritesWorkingForm(t *testing.T) {
	fx := newPaneFixture(t)

	test.Tap(fx.check(t, options.FieldUseTactics))

	if !fx.pane.editor.Form().Bool(options.FieldUseTactics) {
		t.Error("check did not reach the form")
	}
	if fx.campaign.Options().UseTactics {
		t.Error("campaign changed before OK")
	}
}

func TestIntensityEntryUpdatesChances(t *testing.T) {
	fx := newPaneFixture(t)
	test.Tap(fx.check(t, options.FieldUseAtB))

	fx.entry(t, options.FieldBattleIntensity).SetText("2")

	want := atb.BattleChances(2.0)
	for i, id := range options.BattleChanceIDs {
		if got := fx.entry(t, id).Text; got != strconv.Itoa(want[i]) {
			t.Errorf("%s shows %q, want %d", id, got, want[i])
		}
	}
}

func TestBadEntryTextKeepsFormValue(t *testing.T) {
	fx := newPaneFixture(t)
	entry := fx.entry(t, "maintenanceCycleDays")

	entry.SetText("weekly")

	if entry.Text != "weekly" {
		t.Errorf("entry text replaced with %q", entry.Text)
	}
	if entry.Validate() == nil {
		t.Error("validator accepted bad text")
	}
	if fx.pane.editor.Form().Int("maintenanceCycleDays") != 7 {
		t.Error("bad text changed the form")
	}
}

func TestEnablementFollowsControls(t *testing.T) {
	fx := newPaneFixture(t)
	shares := fx.check(t, "sharesForAll")

	if !shares.Disabled() {
		t.Fatal("sharesForAll enabled while AtB is off")
	}
	test.Tap(fx.check(t, options.FieldUseAtB))
	if !shares.Disabled() {
		t.Error("sharesForAll enabled before the share system")
	}
	test.Tap(fx.check(t, "useShareSystem"))
	if shares.Disabled() {
		t.Error("sharesForAll still disabled")
	}
}

func TestCommitRejectsBlankName(t *testing.T) {
	fx := newPaneFixture(t)
	test.Tap(fx.check(t, options.FieldUseTactics))
	fx.pane.general.nameEntry.SetText("   ")

	committed := false
	fx.pane.OnCommitted = func() { committed = true }
	fx.pane.Commit()

	if committed {
		t.Error("OnCommitted called for an invalid campaign")
	}
	if fx.campaign.Name() != "Gray Death Legion" || fx.campaign.Options().UseTactics {
		t.Error("campaign changed despite failed validation")
	}
}

func TestCommitAppliesEdits(t *testing.T) {
	fx := newPaneFixture(t)
	test.Tap(fx.check(t, options.FieldUseTactics))
	fx.pane.general.nameEntry.SetText("Kell Hounds")
	fx.pane.general.factionEntry.SetText("fs")

	committed := false
	fx.pane.OnCommitted = func() { committed = true }
	fx.pane.Commit()

	if !committed {
		t.Fatal("commit did not complete")
	}
	st := fx.campaign.State()
	if st.Name != "Kell Hounds" || st.FactionCode != "FS" || !st.Options.UseTactics {
		t.Errorf("committed state = %q %q %v", st.Name, st.FactionCode, st.Options.UseTactics)
	}
}

func TestCancelRestoresControls(t *testing.T) {
	fx := newPaneFixture(t)
	check := fx.check(t, options.FieldUseTactics)
	test.Tap(check)
	fx.pane.general.nameEntry.SetText("Scratch")

	fx.pane.Cancel()

	if check.Checked || fx.pane.editor.Form().Bool(options.FieldUseTactics) {
		t.Error("cancel kept the pending check")
	}
	if fx.pane.general.nameEntry.Text != "Gray Death Legion" {
		t.Errorf("name entry = %q after cancel", fx.pane.general.nameEntry.Text)
	}
}

func TestApplyPresetRefreshesPane(t *testing.T) {
	fx := newPaneFixture(t)
	p := &preset.Preset{
		Title:   "Lyran Regulars",
		Faction: "LA",
		Options: map[string]string{options.FieldUseAtB: "true"},
	}
	if err := p.Save(filepath.Join(fx.presetDir, preset.FileName(p.Title))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fx.pane.presets.Reload()
	list := fx.pane.presets.Presets()
	if len(list) != 1 {
		t.Fatalf("listed %d presets, want 1", len(list))
	}
	fx.pane.presets.Apply(list[0])

	if fx.pane.general.factionEntry.Text != "LA" {
		t.Errorf("faction entry = %q, want LA", fx.pane.general.factionEntry.Text)
	}
	if !fx.check(t, options.FieldUseAtB).Checked {
		t.Error("useAtB check not refreshed")
	}
	if fx.check(t, "useShareSystem").Disabled() {
		t.Error("AtB dependents still disabled")
	}
}

func TestSavePresetWritesFile(t *testing.T) {
	fx := newPaneFixture(t)
	test.Tap(fx.check(t, options.FieldUseEdge))

	path, err := fx.pane.presets.Save("Edge Cases", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Dir(path) != fx.presetDir {
		t.Errorf("preset written to %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("preset file missing: %v", err)
	}
	if got := fx.pane.presets.Presets(); len(got) != 1 || got[0].Title != "Edge Cases" {
		t.Errorf("preset list not reloaded: %v", got)
	}
}

func TestExportImportINI(t *testing.T) {
	fx := newPaneFixture(t)
	path := filepath.Join(t.TempDir(), "out", "options.ini")

	fx.entry(t, "maintenanceCycleDays").SetText("30")
	if err := fx.pane.presets.ExportINI(path); err != nil {
		t.Fatalf("ExportINI: %v", err)
	}

	fx.pane.Cancel()
	if got := fx.entry(t, "maintenanceCycleDays").Text; got != "7" {
		t.Fatalf("after cancel entry = %q, want 7", got)
	}

	if err := fx.pane.presets.ImportINI(path); err != nil {
		t.Fatalf("ImportINI: %v", err)
	}
	if got := fx.entry(t, "maintenanceCycleDays").Text; got != "30" {
		t.Errorf("after import entry = %q, want 30", got)
	}
	if fx.campaign.Options().MaintenanceCycleDays != 7 {
		t.Error("import committed to the campaign")
	}
}

func TestSkillsTabEditsWorkingTable(t *testing.T) {
	fx := newPaneFixture(t)
	costs := [skills.NumLevels]int{20, 10, 10, 12, 12, 14, 14, 16, 16, 18, 24}

	if err := fx.pane.skills.SetCosts("Gunnery/Mech", costs); err != nil {
		t.Fatalf("SetCosts: %v", err)
	}
	row := -1
	for i, name := range fx.pane.skills.names {
		if name == "Gunnery/Mech" {
			row = i
		}
	}
	if row < 0 || fx.pane.skills.costs[row][0] != "20" {
		t.Error("table not refreshed with new costs")
	}
	if err := fx.pane.skills.SetCosts("Gunnery/Warp Gun", costs); err == nil {
		t.Error("expected an error for an unknown skill")
	}
	if st, _ := fx.campaign.State().SkillTable.Lookup("Gunnery/Mech"); st.Costs[0] == 20 {
		t.Error("costs reached the campaign before OK")
	}
}

func TestPickCamouflageUsesParentAsCategory(t *testing.T) {
	fx := newPaneFixture(t)
	fx.picker.path = filepath.Join(t.TempDir(), "camo", "Pirates", "skull.png")
	fx.picker.err = nil

	fx.pane.general.pickCamouflage()

	want := campaign.Camouflage{Category: "Pirates", Filename: "skull.png"}
	if got := fx.pane.editor.Camouflage(); got != want {
		t.Errorf("camouflage = %+v, want %+v", got, want)
	}
	if fx.pane.general.camoLabel.Text != "Pirates/skull.png" {
		t.Errorf("label = %q", fx.pane.general.camoLabel.Text)
	}
}

func TestCancelledPickChangesNothing(t *testing.T) {
	fx := newPaneFixture(t)

	fx.pane.general.pickUnitIcon()

	if !fx.pane.editor.UnitIcon().IsDefault() {
		t.Error("cancelled pick set an icon")
	}
}

func TestLogTabRecordsEvents(t *testing.T) {
	l := NewLogTab()
	l.AddEvent(events.NewOptionsChangedEvent("Kell Hounds", []string{"useTactics", "name"}))
	l.AddEvent(events.NewCampaignSavedEvent(3, "Kell Hounds"))

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !strings.Contains(entries[0].Message, "2 option(s) changed: useTactics, name") {
		t.Errorf("message = %q", entries[0].Message)
	}
	if entries[1].Type != events.EventTypeCampaignSaved || !strings.Contains(entries[1].Message, "id 3") {
		t.Errorf("saved entry = %+v", entries[1])
	}

	l.ClearLogs()
	if len(l.Entries()) != 0 {
		t.Error("ClearLogs kept entries")
	}
}
