package database

import (
	"sync"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/events"
)

// AutoSaver writes a campaign to the store after every committed options
// change and keeps a history snapshot of each commit
type AutoSaver struct {
	db       *DB
	bus      events.EventBus
	campaign *campaign.Campaign

	mu  sync.Mutex
	sub events.SubscriptionID
}

// AutoSave starts saving c whenever the bus reports an options change
func (db *DB) AutoSave(bus events.EventBus, c *campaign.Campaign) *AutoSaver {
	a := &AutoSaver{db: db, bus: bus, campaign: c}
	a.sub = bus.Subscribe(events.EventTypeOptionsChanged, a.handleOptionsChanged)
	return a
}

// Retarget makes later saves go to c. A save already running finishes
// against the previous campaign.
func (a *AutoSaver) Retarget(c *campaign.Campaign) {
	a.mu.Lock()
	a.campaign = c
	a.mu.Unlock()
}

// Campaign returns the campaign being saved
func (a *AutoSaver) Campaign() *campaign.Campaign {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.campaign
}

// Stop unsubscribes from the bus
func (a *AutoSaver) Stop() {
	a.bus.Unsubscribe(a.sub)
}

func (a *AutoSaver) handleOptionsChanged(e events.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	changed, _ := e.Data["changed_fields"].([]string)
	log := a.db.logger.WithContext(map[string]interface{}{
		"campaign": a.campaign.Name(),
	})

	id, err := a.db.SaveCampaign(a.campaign)
	if err != nil {
		log.Error("Failed to save campaign", err)
		a.bus.PublishAsync(events.NewErrorEvent("store", err))
		return
	}
	if _, err := a.db.RecordOptionsSnapshot(id, a.campaign.State(), changed); err != nil {
		log.Error("Failed to record options snapshot", err)
		a.bus.PublishAsync(events.NewErrorEvent("store", err))
		return
	}

	a.db.logger.InfoWithContext("Campaign saved", map[string]interface{}{
		"campaign_id": id,
		"changed":     len(changed),
	})
	a.bus.PublishAsync(events.NewCampaignSavedEvent(id, a.campaign.Name()))
}
