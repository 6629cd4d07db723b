package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jordanella.com/campaign-options/internal/events"
)

// EventLogger subscribes to the event bus and writes every campaign event
// to a timestamped log file
type EventLogger struct {
	logger          *Logger
	eventBus        events.EventBus
	subscriptionIDs []events.SubscriptionID
	logFile         *os.File
}

// NewEventLogger creates the log file under logDir and starts listening
func NewEventLogger(eventBus events.EventBus, logDir string) (*EventLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logDir, fmt.Sprintf("events_%s.log", timestamp))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	el := &EventLogger{
		logger:   NewLoggerTo("EventLogger", logFile),
		eventBus: eventBus,
		logFile:  logFile,
	}

	for _, eventType := range events.AllEventTypes {
		el.subscriptionIDs = append(el.subscriptionIDs, eventBus.Subscribe(eventType, el.handleEvent))
	}

	return el, nil
}

// Path returns the log file location
func (el *EventLogger) Path() string {
	return el.logFile.Name()
}

func (el *EventLogger) handleEvent(event events.Event) {
	context := map[string]interface{}{
		"event_type": string(event.Type),
		"source":     event.Source,
	}
	for k, v := range event.Data {
		context[k] = v
	}

	if event.Type == events.EventTypeError || event.Type == events.EventTypeCommitFailed {
		el.logger.WarnWithContext(fmt.Sprintf("Event: %s", event.Type), context)
		return
	}
	el.logger.InfoWithContext(fmt.Sprintf("Event: %s", event.Type), context)
}

// Close unsubscribes and closes the log file
func (el *EventLogger) Close() error {
	for _, id := range el.subscriptionIDs {
		el.eventBus.Unsubscribe(id)
	}
	el.subscriptionIDs = nil
	if el.logFile != nil {
		return el.logFile.Close()
	}
	return nil
}
