package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	// Campaign option events
	EventTypeOptionsChanged EventType = "campaign.options_changed"
	EventTypePresetApplied  EventType = "campaign.preset_applied"
	EventTypeCommitFailed   EventType = "campaign.commit_failed"

	// Storage events
	EventTypeCampaignSaved EventType = "campaign.saved"
	EventTypeOptionsExport EventType = "campaign.options_exported"

	// Error events
	EventTypeError EventType = "error"
)

// AllEventTypes lists every event type, used by subscribers that want everything
var AllEventTypes = []EventType{
	EventTypeOptionsChanged,
	EventTypePresetApplied,
	EventTypeCommitFailed,
	EventTypeCampaignSaved,
	EventTypeOptionsExport,
	EventTypeError,
}

// Event represents a system event with metadata
type Event struct {
	Type      EventType              // Type of event
	Source    string                 // Component that emitted event (e.g., "editor", "store")
	Timestamp time.Time              // When the event occurred
	Data      map[string]interface{} // Event-specific data
}

// EventHandler is a function that processes an event
type EventHandler func(Event)

// SubscriptionID uniquely identifies a subscription
type SubscriptionID int64

// EventBus defines the interface for event pub/sub
type EventBus interface {
	// Subscribe registers a handler for a specific event type
	Subscribe(eventType EventType, handler EventHandler) SubscriptionID

	// Unsubscribe removes a subscription by ID
	Unsubscribe(id SubscriptionID)

	// Publish sends an event to all subscribers (blocking until queued)
	Publish(event Event)

	// PublishAsync sends an event asynchronously (non-blocking)
	PublishAsync(event Event)

	// Stop stops the event bus and drains remaining events
	Stop()
}

// NewOptionsChangedEvent creates the notification fired after a successful commit
func NewOptionsChangedEvent(campaignName string, changedFields []string) Event {
	return Event{
		Type:      EventTypeOptionsChanged,
		Source:    "editor",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"campaign":       campaignName,
			"changed_fields": changedFields,
			"changed_count":  len(changedFields),
		},
	}
}

// NewPresetAppliedEvent creates a preset applied event
func NewPresetAppliedEvent(presetTitle string) Event {
	return Event{
		Type:      EventTypePresetApplied,
		Source:    "editor",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"preset": presetTitle,
		},
	}
}

// NewCommitFailedEvent creates an event for a commit that was rejected
func NewCommitFailedEvent(campaignName string, err error) Event {
	return Event{
		Type:      EventTypeCommitFailed,
		Source:    "editor",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"campaign": campaignName,
			"error":    err.Error(),
		},
	}
}

// NewCampaignSavedEvent creates an event for a campaign written to storage
func NewCampaignSavedEvent(campaignID int64, campaignName string) Event {
	return Event{
		Type:      EventTypeCampaignSaved,
		Source:    "store",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"campaign_id": campaignID,
			"campaign":    campaignName,
		},
	}
}

// NewOptionsExportedEvent creates an event for options written to a file
func NewOptionsExportedEvent(path string) Event {
	return Event{
		Type:      EventTypeOptionsExport,
		Source:    "config",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"path": path,
		},
	}
}

// NewErrorEvent creates an error event
func NewErrorEvent(source string, err error) Event {
	return Event{
		Type:      EventTypeError,
		Source:    source,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"error": err.Error(),
		},
	}
}
