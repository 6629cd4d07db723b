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
	"jordanella.com/campaign-options/internal/database"
)

const historyLimit = 200

// DatabaseHistoryTab lists the options snapshots recorded for the open
// campaign and loads one back into the editor
type DatabaseHistoryTab struct {
	controller *Controller
	db         *database.DB

	snapshots   []database.OptionsSnapshot
	contentArea *fyne.Container
}

// NewDatabaseHistoryTab creates the history tab
func NewDatabaseHistoryTab(ctrl *Controller, db *database.DB) *DatabaseHistoryTab {
	return &DatabaseHistoryTab{
		controller: ctrl,
		db:         db,
	}
}

// Build constructs the UI
func (t *DatabaseHistoryTab) Build() fyne.CanvasObject {
	header := widget.NewLabelWithStyle("Options History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	refreshBtn := widget.NewButton("Refresh", t.Refresh)

	t.contentArea = container.NewStack()
	t.Refresh()

	return container.NewBorder(
		container.NewHBox(header, refreshBtn),
		nil,
		nil,
		nil,
		t.contentArea,
	)
}

// Refresh reloads the snapshots of the open campaign
func (t *DatabaseHistoryTab) Refresh() {
	if t.contentArea == nil {
		return
	}
	if t.db == nil {
		t.show(widget.NewLabel("Database not initialized"))
		return
	}

	c := t.controller.pane.Editor().Campaign()
	if c == nil || c.ID() == 0 {
		t.show(widget.NewLabel("This campaign has not been saved yet"))
		return
	}

	snapshots, err := t.db.ListOptionsHistory(c.ID(), historyLimit)
	if err != nil {
		t.controller.showError(err)
		return
	}
	t.snapshots = snapshots

	if len(snapshots) == 0 {
		t.show(widget.NewLabel("No options history recorded"))
		return
	}
	t.show(t.buildTableView())
}

// Snapshots returns the snapshots currently shown
func (t *DatabaseHistoryTab) Snapshots() []database.OptionsSnapshot {
	return t.snapshots
}

func (t *DatabaseHistoryTab) show(obj fyne.CanvasObject) {
	t.contentArea.Objects = []fyne.CanvasObject{obj}
	t.contentArea.Refresh()
}

func (t *DatabaseHistoryTab) buildTableView() fyne.CanvasObject {
	headers := []string{"ID", "Recorded", "Changes", "Fields"}
	snapshots := t.snapshots

	table := widget.NewTable(
		func() (int, int) {
			return len(snapshots) + 1, len(headers)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Cell")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)

			if id.Row == 0 {
				label.SetText(headers[id.Col])
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.Refresh()
				return
			}
			label.TextStyle = fyne.TextStyle{}

			s := snapshots[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(strconv.FormatInt(s.ID, 10))
			case 1:
				label.SetText(humanize.Time(s.RecordedAt))
			case 2:
				label.SetText(strconv.Itoa(len(s.ChangedFields)))
			case 3:
				label.SetText(strings.Join(s.ChangedFields, ", "))
			}
		},
	)

	table.SetColumnWidth(0, 50)
	table.SetColumnWidth(1, 130)
	table.SetColumnWidth(2, 80)
	table.SetColumnWidth(3, 520)

	table.OnSelected = func(id widget.TableCellID) {
		table.UnselectAll()
		if id.Row > 0 {
			t.showSnapshotDetails(snapshots[id.Row-1])
		}
	}
	return table
}

func (t *DatabaseHistoryTab) showSnapshotDetails(s database.OptionsSnapshot) {
	details := fmt.Sprintf("Snapshot %d\nRecorded: %s (%s)\n\nChanged fields:\n%s",
		s.ID,
		s.RecordedAt.Format("2006-01-02 15:04:05"),
		humanize.Time(s.RecordedAt),
		strings.Join(s.ChangedFields, "\n"),
	)

	content := container.NewVScroll(widget.NewLabel(details))
	content.SetMinSize(fyne.NewSize(420, 320))

	dialog.ShowCustomConfirm("Options Snapshot", "Load into Editor", "Close", content, func(load bool) {
		if load {
			if err := t.Load(s); err != nil {
				t.controller.showError(err)
			}
		}
	}, t.controller.window)
}

// Load shows a snapshot's options in the editor. Nothing is committed
// until OK is pressed.
func (t *DatabaseHistoryTab) Load(s database.OptionsSnapshot) error {
	recs, err := database.SnapshotRecords(s)
	if err != nil {
		return err
	}
	if err := t.controller.pane.Editor().LoadRecords(recs); err != nil {
		return err
	}
	t.controller.pane.RefreshAll()
	t.controller.pane.setStatus(fmt.Sprintf("Loaded snapshot %d from %s", s.ID, humanize.Time(s.RecordedAt)))
	t.controller.switchTab(tabOptions)
	return nil
}
