package gui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"jordanella.com/campaign-options/internal/database"
	"jordanella.com/campaign-options/internal/events"
	"jordanella.com/campaign-options/internal/logging"
	"jordanella.com/campaign-options/internal/options"
)

const (
	tabOptions = iota
	tabHistory
	tabLog
	tabCount
)

// Controller manages the GUI state and routes bus events to the views
type Controller struct {
	app    fyne.App
	window fyne.Window
	db     *database.DB
	bus    *events.DefaultEventBus
	logger *logging.Logger
	saver  *database.AutoSaver

	// GUI components
	pane       *OptionsPane
	historyTab *DatabaseHistoryTab
	logTab     *LogTab
	saveStatus *widget.Label

	// Content area reference for tab switching
	contentArea *fyne.Container

	currentTab int
	lastSaved  time.Time
	mu         sync.RWMutex

	subs []events.SubscriptionID
}

// NewController creates the controller for an editor with a campaign open.
// With a db and a bus the open campaign is saved after every commit; a nil
// db leaves the history view empty.
func NewController(app fyne.App, window fyne.Window, editor *options.Editor, db *database.DB, bus *events.DefaultEventBus, presetDir string, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewLogger("GUI")
	}
	ctrl := &Controller{
		app:    app,
		window: window,
		db:     db,
		bus:    bus,
		logger: logger,
		logTab: NewLogTab(),
	}
	ctrl.pane = NewOptionsPane(editor, window, bus, presetDir, logger.Named("OptionsPane"))
	ctrl.historyTab = NewDatabaseHistoryTab(ctrl, db)

	if db != nil && bus != nil && editor.Campaign() != nil {
		ctrl.saver = db.AutoSave(bus, editor.Campaign())
	}

	ctrl.setupEventHandlers()
	return ctrl
}

// Pane returns the options pane
func (c *Controller) Pane() *OptionsPane {
	return c.pane
}

// LogTab returns the event log view
func (c *Controller) LogTab() *LogTab {
	return c.logTab
}

// BuildUI constructs the main UI with horizontal navigation
func (c *Controller) BuildUI() fyne.CanvasObject {
	tabButtons := container.NewHBox(
		widget.NewButton("Campaign Options", func() { c.switchTab(tabOptions) }),
		widget.NewButton("History", func() { c.switchTab(tabHistory) }),
		widget.NewButton("Event Log", func() { c.switchTab(tabLog) }),
	)
	if c.db != nil {
		tabButtons.Add(layout.NewSpacer())
		tabButtons.Add(widget.NewButton("Open Campaign...", c.showCampaignPicker))
	}

	c.contentArea = container.NewStack(
		c.pane.Build(),
		c.historyTab.Build(),
		c.logTab.Build(),
	)
	c.showTab(tabOptions)

	c.saveStatus = widget.NewLabel("")
	c.updateSaveStatus()

	return container.NewBorder(
		tabButtons,
		c.saveStatus,
		nil,
		nil,
		c.contentArea,
	)
}

// switchTab changes the active view
func (c *Controller) switchTab(tabIndex int) {
	c.mu.Lock()
	c.currentTab = tabIndex
	c.mu.Unlock()

	if tabIndex == tabHistory {
		c.historyTab.Refresh()
	}
	c.showTab(tabIndex)
	c.updateSaveStatus()
}

// showTab updates which view is visible
func (c *Controller) showTab(tabIndex int) {
	if c.contentArea == nil {
		return
	}
	for i := 0; i < tabCount && i < len(c.contentArea.Objects); i++ {
		if i == tabIndex {
			c.contentArea.Objects[i].Show()
		} else {
			c.contentArea.Objects[i].Hide()
		}
	}
	c.contentArea.Refresh()
}

// CurrentTab returns the index of the visible view
func (c *Controller) CurrentTab() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTab
}

// setupEventHandlers subscribes the views to the bus. Handlers run on the
// bus goroutine, so widget updates go through fyne.Do.
func (c *Controller) setupEventHandlers() {
	if c.bus == nil {
		return
	}

	c.subs = append(c.subs, c.bus.SubscribeAll(c.logTab.AddEvent)...)

	c.subs = append(c.subs, c.bus.Subscribe(events.EventTypeCampaignSaved, func(e events.Event) {
		c.mu.Lock()
		c.lastSaved = e.Timestamp
		c.mu.Unlock()

		fyne.Do(func() {
			c.updateSaveStatus()
			c.historyTab.Refresh()
		})
	}))

	c.subs = append(c.subs, c.bus.Subscribe(events.EventTypeError, func(e events.Event) {
		msg, _ := e.Data["error"].(string)
		fyne.Do(func() {
			c.showError(fmt.Errorf("%s: %s", e.Source, msg))
		})
	}))
}

// updateSaveStatus shows how long ago the campaign was last stored
func (c *Controller) updateSaveStatus() {
	if c.saveStatus == nil {
		return
	}
	c.mu.RLock()
	last := c.lastSaved
	c.mu.RUnlock()

	name := ""
	if camp := c.pane.Editor().Campaign(); camp != nil {
		name = camp.Name()
	}
	switch {
	case c.db == nil:
		c.saveStatus.SetText(name + " - not stored")
	case last.IsZero():
		c.saveStatus.SetText(name + " - no changes saved this session")
	default:
		c.saveStatus.SetText(fmt.Sprintf("%s - saved %s", name, humanize.Time(last)))
	}
}

func (c *Controller) showError(err error) {
	if err == nil {
		return
	}
	c.logger.Error("GUI error", err)
	if c.window != nil {
		dialog.ShowError(err, c.window)
	}
}

// OpenCampaign loads a stored campaign into the editor and points the
// automatic save at it. Pending edits to the previous campaign are dropped.
func (c *Controller) OpenCampaign(id int64) error {
	if c.db == nil {
		return ErrNoDatabase
	}
	camp, err := c.db.LoadCampaign(id)
	if err != nil {
		return err
	}
	if err := c.pane.OpenCampaign(camp); err != nil {
		return err
	}
	if c.saver != nil {
		c.saver.Retarget(camp)
	} else if c.bus != nil {
		c.saver = c.db.AutoSave(c.bus, camp)
	}

	c.mu.Lock()
	c.lastSaved = time.Time{}
	c.mu.Unlock()

	if c.window != nil {
		c.window.SetTitle("Campaign Options - " + camp.Name())
	}
	c.historyTab.Refresh()
	c.updateSaveStatus()
	c.logger.InfoWithContext("Switched campaign", map[string]interface{}{
		"campaign_id": id,
		"campaign":    camp.Name(),
	})
	return nil
}

// AutoSaver returns the saver bound to the open campaign, nil without a db
func (c *Controller) AutoSaver() *database.AutoSaver {
	return c.saver
}

func (c *Controller) showCampaignPicker() {
	list, err := c.db.ListCampaigns()
	if err != nil {
		c.showError(err)
		return
	}
	if len(list) == 0 {
		return
	}

	names := make([]string, len(list))
	byName := make(map[string]int64, len(list))
	for i, s := range list {
		names[i] = fmt.Sprintf("%s (%s, saved %s)", s.Name, s.FactionCode, humanize.Time(s.UpdatedAt))
		byName[names[i]] = s.ID
	}
	sel := widget.NewSelect(names, nil)

	dialog.ShowForm("Open Campaign", "Open", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Campaign", sel),
	}, func(ok bool) {
		if !ok || sel.Selected == "" {
			return
		}
		if err := c.OpenCampaign(byName[sel.Selected]); err != nil {
			c.showError(err)
		}
	}, c.window)
}

// Shutdown unsubscribes every handler and stops the automatic save. The bus
// itself belongs to the caller.
func (c *Controller) Shutdown() {
	if c.saver != nil {
		c.saver.Stop()
		c.saver = nil
	}
	if c.bus == nil {
		return
	}
	for _, id := range c.subs {
		c.bus.Unsubscribe(id)
	}
	c.subs = nil
}

var (
	// ErrNoCampaign is returned when the controller is started without a campaign
	ErrNoCampaign = errors.New("no campaign open")
	// ErrNoDatabase is returned when switching campaigns without a store
	ErrNoDatabase = errors.New("no campaign store")
)

// Run builds the window content and shows it. It blocks until the window
// is closed.
func (c *Controller) Run() error {
	if c.pane.Editor().Campaign() == nil {
		return ErrNoCampaign
	}
	c.window.SetContent(c.BuildUI())
	c.window.Resize(DefaultWindowSize)
	c.window.SetOnClosed(c.Shutdown)
	c.window.ShowAndRun()
	return nil
}
