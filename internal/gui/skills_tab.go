package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"jordanella.com/campaign-options/internal/gui/components"
	"jordanella.com/campaign-options/internal/skills"
)

// SkillsTab shows the XP cost table and the special abilities. Edits go
// to the editor's working copies.
type SkillsTab struct {
	pane *OptionsPane

	costs     [][]string
	names     []string
	abilities []skills.SpecialAbility
	selected  int

	table       *widget.Table
	abilityList *widget.List
	detail      *widget.Label
}

func newSkillsTab(pane *OptionsPane) *SkillsTab {
	return &SkillsTab{pane: pane, selected: -1}
}

// Build constructs the tab
func (s *SkillsTab) Build() fyne.CanvasObject {
	s.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(s.costs), skills.NumLevels },
		func() fyne.CanvasObject { return widget.NewLabel("00,000") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(costText(s.cell(id.Row, id.Col)))
		},
	)
	s.table.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("Gunnery/Protomech") }
	s.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		switch {
		case id.Row < 0 && id.Col >= 0:
			label.SetText(strconv.Itoa(id.Col))
		case id.Row >= 0 && id.Row < len(s.names):
			label.SetText(s.names[id.Row])
		}
	}
	s.table.OnSelected = func(id widget.TableCellID) {
		s.table.UnselectAll()
		if id.Row >= 0 && id.Row < len(s.names) {
			s.editCosts(s.names[id.Row])
		}
	}

	s.abilityList = widget.NewList(
		func() int { return len(s.abilities) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil, widget.NewLabel("000 XP"), widget.NewLabel("Special Ability"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			a := s.abilities[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(a.DisplayName)
			box.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%s XP", humanize.Comma(int64(a.XPCost))))
		},
	)
	s.detail = components.Body("")
	s.abilityList.OnSelected = func(id widget.ListItemID) {
		s.selected = id
		s.showAbility(s.abilities[id])
	}

	abilities := container.NewBorder(
		components.Subheading("Special Abilities"),
		container.NewVBox(s.detail, components.SecondaryButton("Edit XP Cost...", s.editSelectedAbility)),
		nil, nil,
		s.abilityList,
	)
	costs := container.NewBorder(
		container.NewVBox(
			components.Subheading("Skill Costs"),
			components.Caption("XP needed to reach each level. Select a row to edit it."),
		),
		nil, nil, nil,
		s.table,
	)

	s.refresh()
	return components.TwoColumnLayout(costs, abilities, 0.65)
}

func (s *SkillsTab) cell(row, col int) string {
	if row < 0 || row >= len(s.costs) || col < 0 || col >= len(s.costs[row]) {
		return ""
	}
	return s.costs[row][col]
}

// costText groups thousands and shows unreachable levels as a dash
func costText(cost string) string {
	n, err := strconv.Atoi(cost)
	if err != nil {
		return cost
	}
	if n < 0 {
		return "-"
	}
	return humanize.Comma(int64(n))
}

// refresh reloads the table and list from the editor's working copies
func (s *SkillsTab) refresh() {
	e := s.pane.editor
	s.costs = e.SkillCostsArray()
	types := e.SkillTable().Types()
	s.names = make([]string, len(types))
	for i, st := range types {
		s.names[i] = st.Name
	}
	s.abilities = e.Abilities()

	if s.table != nil {
		s.table.Refresh()
	}
	if s.abilityList != nil {
		s.abilityList.UnselectAll()
		s.abilityList.Refresh()
		s.detail.SetText("")
		s.selected = -1
	}
}

func (s *SkillsTab) showAbility(a skills.SpecialAbility) {
	var b strings.Builder
	b.WriteString(a.Description)
	if len(a.Prerequisites) > 0 {
		fmt.Fprintf(&b, "\nRequires: %s", strings.Join(a.Prerequisites, ", "))
	}
	if len(a.Invalid) > 0 {
		fmt.Fprintf(&b, "\nIncompatible with: %s", strings.Join(a.Invalid, ", "))
	}
	s.detail.SetText(b.String())
}

func (s *SkillsTab) editCosts(name string) {
	st, ok := s.pane.editor.SkillTable().Lookup(name)
	if !ok {
		return
	}

	entries := make([]*widget.Entry, skills.NumLevels)
	items := make([]*widget.FormItem, skills.NumLevels)
	for level := range entries {
		entry := widget.NewEntry()
		entry.SetText(strconv.Itoa(st.Costs[level]))
		entry.Validator = validateCost
		entries[level] = entry
		items[level] = widget.NewFormItem(fmt.Sprintf("Level %d", level), entry)
	}

	dialog.ShowForm(name+" XP Costs", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		var costs [skills.NumLevels]int
		for level, entry := range entries {
			costs[level], _ = strconv.Atoi(strings.TrimSpace(entry.Text))
		}
		if err := s.SetCosts(name, costs); err != nil {
			s.pane.showError(err)
		}
	}, s.pane.window)
}

// SetCosts changes one skill's costs in the working table
func (s *SkillsTab) SetCosts(name string, costs [skills.NumLevels]int) error {
	if err := s.pane.editor.SetSkillCosts(name, costs); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func validateCost(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("not a number: %q", text)
	}
	if n < -1 {
		return fmt.Errorf("cost must be -1 or more")
	}
	return nil
}

func (s *SkillsTab) editSelectedAbility() {
	if s.selected < 0 || s.selected >= len(s.abilities) {
		return
	}
	s.editAbility(s.abilities[s.selected])
}

func (s *SkillsTab) editAbility(a skills.SpecialAbility) {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(a.XPCost))
	entry.Validator = validateCost

	dialog.ShowForm(a.DisplayName, "Apply", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("XP Cost", entry)},
		func(ok bool) {
			if !ok {
				return
			}
			cost, _ := strconv.Atoi(strings.TrimSpace(entry.Text))
			if err := s.SetAbilityCost(a.Name, cost); err != nil {
				s.pane.showError(err)
			}
		}, s.pane.window)
}

// SetAbilityCost changes one special ability's XP cost in the working set
func (s *SkillsTab) SetAbilityCost(name string, cost int) error {
	if err := s.pane.editor.SetAbilityXPCost(name, cost); err != nil {
		return err
	}
	s.refresh()
	return nil
}
