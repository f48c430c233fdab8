package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLog(t *testing.T) EventLog {
	t.Helper()
	log, err := NewJSONLEventLog(filepath.Join(t.TempDir(), "events.jsonl"))
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func TestEventLog_WriteAndReadBack(t *testing.T) {
	log := newTestLog(t)

	events := []Event{
		{Level: "INFO", Type: "run.started", Message: "sync run started"},
		{Level: "INFO", Type: "page.resolved", Message: "changelog page resolved", Data: map[string]any{"page_id": "abc"}},
		{Level: "ERROR", Type: "run.failed", Message: "no page ID in agent response"},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	all, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[1].Data["page_id"] != "abc" {
		t.Errorf("event data not round-tripped: %+v", all[1])
	}
	if all[0].Time.IsZero() {
		t.Error("write must stamp events with a time")
	}
}

func TestEventLog_FilterByTypeAndLevel(t *testing.T) {
	log := newTestLog(t)
	_ = log.Write(Event{Level: "INFO", Type: "run.started"})
	_ = log.Write(Event{Level: "DEBUG", Type: "session.teardown_failed"})
	_ = log.Write(Event{Level: "INFO", Type: "run.completed"})

	byType, err := log.Read(EventFilter{Type: "run.completed"})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(byType) != 1 || byType[0].Type != "run.completed" {
		t.Errorf("unexpected type-filtered events %+v", byType)
	}

	byLevel, err := log.Read(EventFilter{Level: "DEBUG"})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(byLevel) != 1 || byLevel[0].Type != "session.teardown_failed" {
		t.Errorf("unexpected level-filtered events %+v", byLevel)
	}
}

func TestEventLog_FilterSince(t *testing.T) {
	log := newTestLog(t)
	old := time.Now().Add(-2 * time.Hour).UTC()
	_ = log.Write(Event{Time: old, Level: "INFO", Type: "run.started"})
	_ = log.Write(Event{Level: "INFO", Type: "run.completed"})

	cutoff := time.Now().Add(-time.Hour)
	recent, err := log.Read(EventFilter{Since: &cutoff})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(recent) != 1 || recent[0].Type != "run.completed" {
		t.Errorf("unexpected since-filtered events %+v", recent)
	}
}

func TestEventLog_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n{\"level\":\"INFO\",\"type\":\"run.started\"}\n"), 0o644); err != nil {
		t.Fatalf("seeding log: %v", err)
	}
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer func() { _ = log.Close() }()

	events, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected the malformed line skipped, got %d events", len(events))
	}
}

func TestEventLog_LogEventNeverFails(t *testing.T) {
	log := newTestLog(t)
	_ = log.Close()

	// Writing to a closed log must not panic; LogEvent swallows the error.
	log.LogEvent("INFO", "run.started", "after close", nil)
}
