package gui

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/campaign-options/internal/events"
)

const filterAll = "All"

// LogEntry is one event shown in the log
type LogEntry struct {
	Timestamp time.Time
	Type      events.EventType
	Source    string
	Message   string
}

// LogTab displays the events published while the editor runs
type LogTab struct {
	logs   []LogEntry
	logsMu sync.RWMutex

	// Widgets
	logList         *widget.List
	filterSelect    *widget.Select
	autoScrollCheck *widget.Check
	maxLogs         int
}

// NewLogTab creates a new log tab
func NewLogTab() *LogTab {
	return &LogTab{
		logs:    make([]LogEntry, 0, 500),
		maxLogs: 500,
	}
}

// Build constructs the log viewer UI
func (l *LogTab) Build() fyne.CanvasObject {
	header := widget.NewLabelWithStyle("Event Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	filters := []string{filterAll}
	for _, t := range events.AllEventTypes {
		filters = append(filters, string(t))
	}
	l.filterSelect = widget.NewSelect(filters, func(string) {
		if l.logList != nil {
			l.logList.Refresh()
		}
	})
	l.filterSelect.PlaceHolder = filterAll

	l.autoScrollCheck = widget.NewCheck("Auto-scroll", nil)
	l.autoScrollCheck.SetChecked(true)

	controls := container.NewHBox(
		widget.NewLabel("Filter:"),
		l.filterSelect,
		l.autoScrollCheck,
		widget.NewButton("Clear", l.ClearLogs),
	)

	l.logList = widget.NewList(
		func() int {
			return len(l.filtered())
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("timestamp"),
				widget.NewLabel("type"),
				widget.NewLabel("message"),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			entries := l.filtered()
			if id < 0 || id >= len(entries) {
				return
			}
			entry := entries[id]
			box := item.(*fyne.Container)

			box.Objects[0].(*widget.Label).SetText(entry.Timestamp.Format("15:04:05"))

			typeLabel := box.Objects[1].(*widget.Label)
			typeLabel.SetText(fmt.Sprintf("[%s]", entry.Type))
			typeLabel.Importance = importanceOf(entry.Type)
			typeLabel.Refresh()

			box.Objects[2].(*widget.Label).SetText(entry.Message)
		},
	)

	return container.NewBorder(
		container.NewVBox(header, controls),
		nil,
		nil,
		nil,
		l.logList,
	)
}

func importanceOf(t events.EventType) widget.Importance {
	switch t {
	case events.EventTypeError, events.EventTypeCommitFailed:
		return widget.DangerImportance
	case events.EventTypeCampaignSaved:
		return widget.SuccessImportance
	case events.EventTypePresetApplied, events.EventTypeOptionsExport:
		return widget.LowImportance
	default:
		return widget.MediumImportance
	}
}

// Describe renders an event as one log line
func Describe(e events.Event) string {
	switch e.Type {
	case events.EventTypeOptionsChanged:
		fields, _ := e.Data["changed_fields"].([]string)
		return fmt.Sprintf("%v: %d option(s) changed: %s", e.Data["campaign"], len(fields), strings.Join(fields, ", "))
	case events.EventTypePresetApplied:
		return fmt.Sprintf("Applied preset %v", e.Data["preset"])
	case events.EventTypeCommitFailed:
		return fmt.Sprintf("%v: commit failed: %v", e.Data["campaign"], e.Data["error"])
	case events.EventTypeCampaignSaved:
		return fmt.Sprintf("Saved %v (id %v)", e.Data["campaign"], e.Data["campaign_id"])
	case events.EventTypeOptionsExport:
		return fmt.Sprintf("Exported options to %v", e.Data["path"])
	case events.EventTypeError:
		return fmt.Sprintf("%s: %v", e.Source, e.Data["error"])
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Data[k])
	}
	return strings.Join(parts, " ")
}

// AddEvent records an event. Safe to call from any goroutine.
func (l *LogTab) AddEvent(e events.Event) {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	l.logsMu.Lock()
	l.logs = append(l.logs, LogEntry{
		Timestamp: ts,
		Type:      e.Type,
		Source:    e.Source,
		Message:   Describe(e),
	})
	if len(l.logs) > l.maxLogs {
		l.logs = l.logs[len(l.logs)-l.maxLogs:]
	}
	l.logsMu.Unlock()

	if l.logList != nil {
		fyne.Do(func() {
			l.logList.Refresh()
			if l.autoScrollCheck != nil && l.autoScrollCheck.Checked {
				l.logList.ScrollToBottom()
			}
		})
	}
}

// Entries returns a copy of the recorded entries
func (l *LogTab) Entries() []LogEntry {
	l.logsMu.RLock()
	defer l.logsMu.RUnlock()
	return append([]LogEntry(nil), l.logs...)
}

// ClearLogs removes all log entries
func (l *LogTab) ClearLogs() {
	l.logsMu.Lock()
	l.logs = make([]LogEntry, 0, l.maxLogs)
	l.logsMu.Unlock()

	if l.logList != nil {
		l.logList.Refresh()
	}
}

// filtered returns the entries matching the selected event type
func (l *LogTab) filtered() []LogEntry {
	l.logsMu.RLock()
	defer l.logsMu.RUnlock()

	selected := filterAll
	if l.filterSelect != nil && l.filterSelect.Selected != "" {
		selected = l.filterSelect.Selected
	}
	if selected == filterAll {
		return append([]LogEntry(nil), l.logs...)
	}

	var out []LogEntry
	for _, entry := range l.logs {
		if string(entry.Type) == selected {
			out = append(out, entry)
		}
	}
	return out
}
