package gui

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/gui/components"
	"jordanella.com/campaign-options/internal/options"
)

const dateLayout = "2006-01-02"

// GeneralTab edits the campaign level values: name, faction, date,
// camouflage, colour, unit icon and rank system, followed by the
// general options fields.
type GeneralTab struct {
	pane     *OptionsPane
	updating bool

	nameEntry    *widget.Entry
	factionEntry *widget.SelectEntry
	factionName  *widget.Label
	dateEntry    *widget.Entry
	rankSelect   *widget.Select
	camoLabel    *widget.Label
	iconLabel    *widget.Label
	swatch       *components.Swatch
}

func newGeneralTab(pane *OptionsPane) *GeneralTab {
	return &GeneralTab{pane: pane}
}

// Build constructs the tab
func (g *GeneralTab) Build() fyne.CanvasObject {
	e := g.pane.editor

	g.nameEntry = widget.NewEntry()
	g.nameEntry.SetPlaceHolder("Campaign name")
	g.nameEntry.OnChanged = func(text string) {
		if !g.updating {
			e.SetName(text)
		}
	}

	g.factionEntry = widget.NewSelectEntry(nil)
	g.factionEntry.SetPlaceHolder("Faction code")
	g.factionName = widget.NewLabel("")
	g.factionEntry.OnChanged = func(text string) {
		if g.updating {
			return
		}
		e.SetFactionCode(strings.TrimSpace(text))
		g.showFactionName()
	}

	g.dateEntry = widget.NewEntry()
	g.dateEntry.Validator = func(text string) error {
		_, err := time.Parse(dateLayout, text)
		return err
	}
	g.dateEntry.OnChanged = func(text string) {
		if g.updating {
			return
		}
		if d, err := time.Parse(dateLayout, text); err == nil {
			e.SetDate(d)
			g.refreshFactions()
		}
	}
	calendarBtn := components.SecondaryButton("Calendar...", g.pickDate)

	g.rankSelect = widget.NewSelect(campaign.RankSystems, func(code string) {
		if g.updating {
			return
		}
		if err := e.SetRankSystem(code); err != nil {
			g.pane.showError(err)
		}
	})

	g.camoLabel = widget.NewLabel("")
	camoBtn := components.SecondaryButton("Choose...", g.pickCamouflage)
	g.iconLabel = widget.NewLabel("")
	iconBtn := components.SecondaryButton("Choose...", g.pickUnitIcon)

	g.swatch = components.NewSwatch(e.Colour())
	colourBtn := components.SecondaryButton("Choose...", g.pickColour)

	form := widget.NewForm(
		widget.NewFormItem("Name", g.nameEntry),
		widget.NewFormItem("Faction", container.NewBorder(nil, nil, nil, g.factionName, g.factionEntry)),
		widget.NewFormItem("Date", container.NewBorder(nil, nil, nil, calendarBtn, g.dateEntry)),
		widget.NewFormItem("Rank System", g.rankSelect),
		widget.NewFormItem("Camouflage", components.LabelButtonsRow(g.camoLabel, camoBtn)),
		widget.NewFormItem("Force Colour", components.LabelButtonsRow(g.swatch, colourBtn)),
		widget.NewFormItem("Unit Icon", components.LabelButtonsRow(g.iconLabel, iconBtn)),
	)

	return container.NewVScroll(container.NewVBox(
		form,
		widget.NewSeparator(),
		components.Subheading("Options"),
		g.pane.buildFieldForm(options.TabGeneral),
	))
}

// refresh shows the editor's current campaign level values
func (g *GeneralTab) refresh() {
	if g.nameEntry == nil {
		return
	}
	e := g.pane.editor

	g.updating = true
	defer func() { g.updating = false }()

	g.nameEntry.SetText(e.Name())
	g.dateEntry.SetText(e.Date().Format(dateLayout))
	g.refreshFactions()
	g.factionEntry.SetText(e.FactionCode())
	g.showFactionName()
	g.rankSelect.SetSelected(e.RankSystem())
	g.camoLabel.SetText(e.Camouflage().String())
	g.iconLabel.SetText(e.UnitIcon().String())
	g.swatch.SetColour(e.Colour())
}

// refreshFactions offers the factions that exist in the campaign year
func (g *GeneralTab) refreshFactions() {
	e := g.pane.editor
	choosable := e.Factions().Choosable(e.Date().Year())
	codes := make([]string, len(choosable))
	for i, f := range choosable {
		codes[i] = f.Code
	}
	g.factionEntry.SetOptions(codes)
}

func (g *GeneralTab) showFactionName() {
	f, err := g.pane.editor.Faction()
	if err != nil {
		g.factionName.SetText("Unknown faction")
		return
	}
	g.factionName.SetText(fmt.Sprintf("%s (%s)", f.Name, f.Code))
}

func (g *GeneralTab) setDate(d time.Time) {
	g.pane.editor.SetDate(d)

	g.updating = true
	g.dateEntry.SetText(d.Format(dateLayout))
	g.updating = false

	g.refreshFactions()
}

func (g *GeneralTab) pickDate() {
	var d dialog.Dialog
	cal := widget.NewCalendar(g.pane.editor.Date(), func(t time.Time) {
		g.setDate(t)
		if d != nil {
			d.Hide()
		}
	})
	d = dialog.NewCustom("Campaign Date", "Cancel", cal, g.pane.window)
	d.Show()
}

func (g *GeneralTab) pickColour() {
	picker := dialog.NewColorPicker("Force Colour", "Choose the force colour", func(c color.Color) {
		g.pane.editor.SetColour(c)
		g.swatch.SetColour(g.pane.editor.Colour())
	}, g.pane.window)
	picker.Advanced = true
	picker.SetColor(g.pane.editor.Colour())
	picker.Show()
}

func (g *GeneralTab) pickCamouflage() {
	category, file, ok := g.pickImage("Choose Camouflage")
	if !ok {
		return
	}
	g.pane.editor.SetCamouflage(campaign.Camouflage{Category: category, Filename: file})
	g.camoLabel.SetText(g.pane.editor.Camouflage().String())
}

func (g *GeneralTab) pickUnitIcon() {
	category, file, ok := g.pickImage("Choose Unit Icon")
	if !ok {
		return
	}
	g.pane.editor.SetUnitIcon(campaign.UnitIcon{Category: category, Filename: file})
	g.iconLabel.SetText(g.pane.editor.UnitIcon().String())
}

// pickImage returns the chosen image's parent directory name as its
// category together with its file name
func (g *GeneralTab) pickImage(title string) (category, file string, ok bool) {
	path, err := g.pane.picker.Load(title, imageFilter)
	if err != nil {
		if !errors.Is(err, ErrPickCancelled) {
			g.pane.showError(err)
		}
		return "", "", false
	}
	if path == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(path)), filepath.Base(path), true
}
