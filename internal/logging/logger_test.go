package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"jordanella.com/campaign-options/internal/events"
)

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo("Editor", &buf).SetMinLevel(LogLevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("failed", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN [Editor] shown") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "| error=boom") {
		t.Errorf("missing error text: %q", out)
	}
}

func TestTextFormatterSortsContext(t *testing.T) {
	entry := &LogEntry{
		Timestamp: time.Date(3025, 1, 1, 0, 0, 0, 0, time.UTC),
		Level:     LogLevelInfo,
		Component: "Store",
		Message:   "saved",
		Context:   map[string]interface{}{"zeta": 1, "alpha": "a"},
	}

	got := (&TextFormatter{}).Format(entry)
	want := "[3025-01-01 00:00:00.000] INFO [Store] saved | alpha=a zeta=1\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestContextLoggerWritesToEveryOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := NewLoggerTo("Store", &first).AddOutput(&second)

	logger.WithContext(map[string]interface{}{"campaign": "Kell Hounds"}).Error("save failed", errors.New("locked"))

	for name, buf := range map[string]*bytes.Buffer{"first": &first, "second": &second} {
		if !strings.Contains(buf.String(), "ERROR [Store] save failed | error=locked | campaign=Kell Hounds") {
			t.Errorf("%s output = %q", name, buf.String())
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LogLevelDebug {
		t.Error("expected lower-case debug to parse")
	}
	if ParseLevel("verbose") != LogLevelInfo {
		t.Error("unknown level should fall back to INFO")
	}
}

func TestEventLoggerWritesEvents(t *testing.T) {
	bus := events.NewEventBus(10)
	el, err := NewEventLogger(bus, t.TempDir())
	if err != nil {
		t.Fatalf("NewEventLogger: %v", err)
	}

	bus.Publish(events.NewOptionsChangedEvent("Eridani Light Horse", []string{"useAtB"}))
	bus.Stop()

	path := el.Path()
	if err := el.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Event: campaign.options_changed") {
		t.Errorf("log file missing event line: %q", data)
	}
	if !strings.Contains(string(data), "campaign=Eridani Light Horse") {
		t.Errorf("log file missing campaign context: %q", data)
	}
}
