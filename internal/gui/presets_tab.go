package gui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/campaign-options/internal/config"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/gui/components"
	"jordanella.com/campaign-options/internal/preset"
)

// PresetsTab lists the presets found in the preset directory and moves
// options in and out of the editor through preset and INI files
type PresetsTab struct {
	pane *OptionsPane

	presets  []*preset.Preset
	selected int

	list   *widget.List
	detail *widget.Label
}

func newPresetsTab(pane *OptionsPane) *PresetsTab {
	return &PresetsTab{pane: pane, selected: -1}
}

// Build constructs the tab
func (t *PresetsTab) Build() fyne.CanvasObject {
	t.list = widget.NewList(
		func() int { return len(t.presets) },
		func() fyne.CanvasObject { return widget.NewLabel("Preset title") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(t.presets[id].Title)
		},
	)
	t.detail = components.Body("Select a preset to see its description.")
	t.list.OnSelected = func(id widget.ListItemID) {
		t.selected = id
		t.showPreset(t.presets[id])
	}
	t.list.OnUnselected = func(widget.ListItemID) {
		t.selected = -1
	}

	presetButtons := components.ButtonGroup(
		components.PrimaryButton("Apply", t.applySelected),
		components.SecondaryButton("Save As...", t.saveAs),
		components.SecondaryButton("Import...", t.importPreset),
		components.SecondaryButton("Refresh", t.Reload),
	)
	iniButtons := components.ButtonGroup(
		components.SecondaryButton("Export INI...", t.exportINI),
		components.SecondaryButton("Import INI...", t.importINI),
	)

	right := container.NewVBox(
		t.detail,
		widget.NewSeparator(),
		presetButtons,
		widget.NewSeparator(),
		components.Subheading("Options File"),
		components.Caption("Import loads the file into the editor; press OK to keep it."),
		iniButtons,
	)
	left := container.NewBorder(components.Subheading("Presets"), nil, nil, nil, t.list)

	t.Reload()
	return components.TwoColumnLayout(left, right, 0.35)
}

// Reload rereads the preset directory
func (t *PresetsTab) Reload() {
	list, err := preset.LoadDir(t.pane.presetDir)
	if err != nil {
		t.pane.logger.Error("Failed to load presets", err)
	}
	t.presets = list
	t.selected = -1
	if t.list != nil {
		t.list.UnselectAll()
		t.list.Refresh()
	}
}

// Presets returns the presets currently listed
func (t *PresetsTab) Presets() []*preset.Preset {
	return t.presets
}

func (t *PresetsTab) showPreset(p *preset.Preset) {
	var b strings.Builder
	b.WriteString(p.Title)
	if p.Description != "" {
		b.WriteString("\n\n" + p.Description)
	}
	if p.Faction != "" {
		fmt.Fprintf(&b, "\n\nFaction: %s", p.Faction)
	}
	fmt.Fprintf(&b, "\nOptions: %d, skill costs: %d", len(p.Options)+len(p.SkillPreferences), len(p.SkillCosts))
	t.detail.SetText(b.String())
}

func (t *PresetsTab) applySelected() {
	if t.selected < 0 || t.selected >= len(t.presets) {
		return
	}
	t.Apply(t.presets[t.selected])
}

// Apply loads a preset into the editor and redraws the pane
func (t *PresetsTab) Apply(p *preset.Preset) {
	if err := t.pane.editor.ApplyPreset(p); err != nil {
		t.pane.showError(err)
		return
	}
	t.pane.RefreshAll()
	t.pane.setStatus(fmt.Sprintf("Applied preset %q", p.Title))
}

func (t *PresetsTab) saveAs() {
	title := widget.NewEntry()
	title.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("a preset needs a title")
		}
		return nil
	}
	desc := widget.NewMultiLineEntry()

	dialog.ShowForm("Save Preset", "Save", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Title", title),
		widget.NewFormItem("Description", desc),
	}, func(ok bool) {
		if !ok {
			return
		}
		if _, err := t.Save(strings.TrimSpace(title.Text), desc.Text); err != nil {
			t.pane.showError(err)
		}
	}, t.pane.window)
}

// Save writes the editor's working state as a preset in the preset
// directory and returns the file written
func (t *PresetsTab) Save(title, description string) (string, error) {
	p, err := t.pane.editor.SavePreset(title, description)
	if err != nil {
		return "", err
	}
	path := filepath.Join(t.pane.presetDir, preset.FileName(title))
	if err := p.Save(path); err != nil {
		return "", err
	}
	t.pane.logger.InfoWithContext("Saved preset", map[string]interface{}{
		"preset": title,
		"path":   path,
	})
	t.Reload()
	t.pane.setStatus(fmt.Sprintf("Saved preset %q", title))
	return path, nil
}

func (t *PresetsTab) importPreset() {
	path, ok := t.pick(t.pane.picker.Load, "Import Preset", presetFilter)
	if !ok {
		return
	}
	p, err := preset.LoadFile(path)
	if err != nil {
		t.pane.showError(err)
		return
	}
	t.Apply(p)
}

func (t *PresetsTab) exportINI() {
	path, ok := t.pick(t.pane.picker.Save, "Export Options", iniFilter)
	if !ok {
		return
	}
	if filepath.Ext(path) == "" {
		path += ".ini"
	}
	if err := t.ExportINI(path); err != nil {
		t.pane.showError(err)
	}
}

// ExportINI writes the working options, as they would be committed, to path
func (t *PresetsTab) ExportINI(path string) error {
	staged, err := t.pane.editor.Staged()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := config.SaveOptionsINI(t.pane.editor.Schema(), staged, path); err != nil {
		return err
	}
	t.pane.publish(events.NewOptionsExportedEvent(path))
	t.pane.setStatus("Exported options to " + filepath.Base(path))
	return nil
}

func (t *PresetsTab) importINI() {
	path, ok := t.pick(t.pane.picker.Load, "Import Options", iniFilter)
	if !ok {
		return
	}
	if err := t.ImportINI(path); err != nil {
		t.pane.showError(err)
	}
}

// ImportINI loads an options file into the editor without committing it
func (t *PresetsTab) ImportINI(path string) error {
	recs, err := config.LoadOptionsINI(t.pane.editor.Schema(), path)
	if err != nil {
		return err
	}
	if err := t.pane.editor.LoadRecords(recs); err != nil {
		return err
	}
	t.pane.RefreshAll()
	t.pane.setStatus("Imported options from " + filepath.Base(path))
	return nil
}

func (t *PresetsTab) pick(open func(string, FileFilter) (string, error), title string, filter FileFilter) (string, bool) {
	path, err := open(title, filter)
	if err != nil {
		if !errors.Is(err, ErrPickCancelled) {
			t.pane.showError(err)
		}
		return "", false
	}
	return path, path != ""
}
