package gui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/gui/components"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/options"
)

// fieldWidget ties one schema field to the control showing it
type fieldWidget struct {
	control fyne.Disableable
	refresh func()
}

// OptionsPane is the tabbed campaign options editor. Every control writes
// into the editor's working form; nothing reaches the campaign until OK.
type OptionsPane struct {
	editor    *options.Editor
	window    fyne.Window
	bus       events.EventBus
	logger    *logging.Logger
	picker    FilePicker
	presetDir string

	fields map[string]*fieldWidget
	// updating is set while controls are refreshed from the form so their
	// change callbacks do not write back
	updating bool
	// editing is the field whose control is being typed into
	editing string

	tabs    *container.AppTabs
	general *GeneralTab
	skills  *SkillsTab
	presets *PresetsTab
	status  *widget.Label

	// OnCommitted is called after a successful commit
	OnCommitted func()
	// OnCancelled is called after pending edits were discarded
	OnCancelled func()
}

// NewOptionsPane creates the pane for an editor that already has a
// campaign open. bus may be nil.
func NewOptionsPane(editor *options.Editor, window fyne.Window, bus events.EventBus, presetDir string, logger *logging.Logger) *OptionsPane {
	if logger == nil {
		logger = logging.NewLogger("OptionsPane")
	}
	return &OptionsPane{
		editor:    editor,
		window:    window,
		bus:       bus,
		logger:    logger,
		picker:    NewNativePicker(presetDir),
		presetDir: presetDir,
		fields:    make(map[string]*fieldWidget),
	}
}

// SetFilePicker replaces the native file dialogs
func (p *OptionsPane) SetFilePicker(fp FilePicker) {
	p.picker = fp
}

// Editor returns the editor behind the pane
func (p *OptionsPane) Editor() *options.Editor {
	return p.editor
}

// Build constructs the pane. Call it once.
func (p *OptionsPane) Build() fyne.CanvasObject {
	p.general = newGeneralTab(p)
	p.skills = newSkillsTab(p)
	p.presets = newPresetsTab(p)

	p.tabs = container.NewAppTabs(container.NewTabItem(options.TabGeneral.Title, p.general.Build()))
	for _, tab := range p.editor.Schema().Tabs() {
		if tab == options.TabGeneral {
			continue
		}
		p.tabs.Append(container.NewTabItem(tab.Title, container.NewVScroll(p.buildFieldForm(tab))))
	}
	p.tabs.Append(container.NewTabItem("Skills", p.skills.Build()))
	p.tabs.Append(container.NewTabItem("Presets", p.presets.Build()))
	p.tabs.SetTabLocation(container.TabLocationLeading)

	p.editor.Form().OnChange(p.onFormChange)

	p.status = widget.NewLabel("")
	okBtn := components.PrimaryButton("OK", p.Commit)
	cancelBtn := components.SecondaryButton("Cancel", p.Cancel)
	footer := components.LabelButtonsRow(p.status, cancelBtn, okBtn)

	p.RefreshAll()

	return container.NewBorder(nil, footer, nil, nil, p.tabs)
}

// buildFieldForm lays out every field of a tab, labelled, with its tooltip
// as hint text
func (p *OptionsPane) buildFieldForm(tab options.Tab) *widget.Form {
	form := widget.NewForm()
	for _, f := range p.editor.Schema().FieldsIn(tab) {
		item := widget.NewFormItem(f.Label, p.fieldControl(f))
		item.HintText = f.Tooltip
		form.AppendItem(item)
	}
	return form
}

func (p *OptionsPane) fieldControl(f options.Field) fyne.CanvasObject {
	id := f.ID
	form := p.editor.Form()

	switch f.Kind {
	case options.KindBool:
		check := widget.NewCheck("", func(on bool) { p.set(id, on) })
		p.fields[id] = &fieldWidget{control: check, refresh: func() { check.SetChecked(form.Bool(id)) }}
		return check

	case options.KindChoice:
		sel := widget.NewSelect(f.Choices, func(choice string) { p.set(id, choice) })
		p.fields[id] = &fieldWidget{control: sel, refresh: func() { sel.SetSelected(form.StringValue(id)) }}
		return sel

	default:
		entry := widget.NewEntry()
		entry.Validator = func(text string) error {
			_, err := f.Parse(text)
			return err
		}
		entry.OnChanged = func(text string) { p.setText(id, text) }
		p.fields[id] = &fieldWidget{control: entry, refresh: func() {
			text, err := form.Text(id)
			if err == nil {
				entry.SetText(text)
			}
		}}
		return entry
	}
}

func (p *OptionsPane) set(id string, v any) {
	if p.updating {
		return
	}
	p.editing = id
	defer func() { p.editing = "" }()

	if err := p.editor.Form().Set(id, v); err != nil {
		p.logger.WarnWithContext("Rejected option value", map[string]interface{}{
			"field": id,
			"error": err.Error(),
		})
	}
}

// setText leaves unparsable text in the entry; its validator marks it
func (p *OptionsPane) setText(id, text string) {
	if p.updating {
		return
	}
	p.editing = id
	defer func() { p.editing = "" }()

	if err := p.editor.Form().SetText(id, text); err != nil {
		p.logger.DebugWithContext("Ignoring unparsable option text", map[string]interface{}{
			"field": id,
			"text":  text,
		})
	}
}

// onFormChange refreshes the controls of changed fields and applies
// enablement. The control being typed into keeps its text.
func (p *OptionsPane) onFormChange(ids []string) {
	form := p.editor.Form()

	p.updating = true
	defer func() { p.updating = false }()

	for _, id := range ids {
		fw, ok := p.fields[id]
		if !ok {
			continue
		}
		if id != p.editing {
			fw.refresh()
		}
		if form.Enabled(id) {
			fw.control.Enable()
		} else {
			fw.control.Disable()
		}
	}
}

// RefreshAll redraws every control from the editor
func (p *OptionsPane) RefreshAll() {
	ids := make([]string, 0, len(p.fields))
	for id := range p.fields {
		ids = append(ids, id)
	}
	p.onFormChange(ids)

	if p.general != nil {
		p.general.refresh()
	}
	if p.skills != nil {
		p.skills.refresh()
	}
}

// Commit validates and commits the working state. A failed validation
// or commit is shown to the user and nothing changes.
func (p *OptionsPane) Commit() {
	if err := p.editor.Commit(); err != nil {
		var verr *options.ValidationError
		if errors.As(err, &verr) {
			err = errors.New(strings.Join(verr.Result.Messages, "\n"))
		}
		p.showError(err)
		return
	}
	p.setStatus("Options saved to campaign")
	if p.OnCommitted != nil {
		p.OnCommitted()
	}
}

// Cancel discards every pending edit
func (p *OptionsPane) Cancel() {
	if err := p.editor.Reload(); err != nil {
		p.showError(err)
		return
	}
	p.RefreshAll()
	p.setStatus("Changes discarded")
	if p.OnCancelled != nil {
		p.OnCancelled()
	}
}

// OpenCampaign switches the pane to another campaign
func (p *OptionsPane) OpenCampaign(c *campaign.Campaign) error {
	if err := p.editor.Open(c); err != nil {
		return err
	}
	p.RefreshAll()
	p.setStatus("Editing " + c.Name())
	return nil
}

func (p *OptionsPane) setStatus(text string) {
	if p.status != nil {
		p.status.SetText(text)
	}
}

func (p *OptionsPane) showError(err error) {
	p.logger.Error("Options pane error", err)
	if p.window != nil {
		dialog.ShowError(err, p.window)
	}
}

func (p *OptionsPane) publish(ev events.Event) {
	if p.bus != nil {
		p.bus.Publish(ev)
	}
}
