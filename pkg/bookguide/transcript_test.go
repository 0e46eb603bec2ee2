package bookguide

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "conversation_history.json"), nil, false)
}

func TestLoadMissingFileReturnsEmptyMapping(t *testing.T) {
	store := newTestStore(t)

	transcripts := store.Load()
	if len(transcripts) != 0 {
		t.Fatalf("expected empty mapping, got %d entries", len(transcripts))
	}
}

func TestLoadCorruptFileReturnsEmptyMapping(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	transcripts := store.Load()
	if len(transcripts) != 0 {
		t.Fatalf("expected empty mapping for corrupt file, got %d entries", len(transcripts))
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := newTestStore(t)

	history := []Exchange{
		{Role: RoleUser, Content: "persona instructions"},
		{Role: RoleModel, Content: "acknowledged"},
		{Role: RoleUser, Content: "Can you recommend a mystery?"},
		{Role: RoleModel, Content: "Try The Thursday Murder Club."},
	}
	if err := store.Save("20240101_120000", history); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	transcripts := store.Load()
	record, ok := transcripts["20240101_120000"]
	if !ok {
		t.Fatal("saved session missing from mapping")
	}
	if record.Timestamp == "" {
		t.Fatal("expected non-empty timestamp")
	}
	if len(record.History) != len(history) {
		t.Fatalf("expected %d exchanges, got %d", len(history), len(record.History))
	}
	for i, exchange := range record.History {
		if exchange != history[i] {
			t.Fatalf("exchange %d altered: got %+v, want %+v", i, exchange, history[i])
		}
	}
}

func TestLoadToleratesBothWireShapes(t *testing.T) {
	store := newTestStore(t)

	// One plain {role, parts} record, one opaque object with a role
	// key, one opaque object without.
	doc := `{
  "legacy": {
    "timestamp": "2024-01-01T12:00:00Z",
    "extra_field": true,
    "history": [
      {"role": "model", "parts": "a plain record"},
      {"role": "model", "content": ["opaque"]},
      {"text": "no role at all"}
    ]
  }
}`
	if err := os.WriteFile(store.path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	record, ok := store.Load()["legacy"]
	if !ok {
		t.Fatal("legacy session missing from mapping")
	}
	if len(record.History) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(record.History))
	}

	if record.History[0].Role != RoleModel || record.History[0].Content != "a plain record" {
		t.Fatalf("plain record mis-decoded: %+v", record.History[0])
	}
	if record.History[1].Role != RoleModel {
		t.Fatalf("opaque record with role key should decode as model turn: %+v", record.History[1])
	}
	if !strings.Contains(record.History[1].Content, "opaque") {
		t.Fatalf("opaque record lost its text form: %+v", record.History[1])
	}
	if record.History[2].Role != RoleUser {
		t.Fatalf("opaque record without role key should default to user: %+v", record.History[2])
	}
}

func TestSaveOverwritesOnlyOwnEntry(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("other", []Exchange{{Role: RoleUser, Content: "kept"}}); err != nil {
		t.Fatalf("Save other session: %v", err)
	}

	first := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }
	if err := store.Save("mine", []Exchange{{Role: RoleUser, Content: "v1"}}); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	store.now = func() time.Time { return first.Add(time.Minute) }
	if err := store.Save("mine", []Exchange{{Role: RoleUser, Content: "v2"}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	transcripts := store.Load()
	if len(transcripts) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(transcripts))
	}
	if transcripts["other"].History[0].Content != "kept" {
		t.Fatalf("other session clobbered: %+v", transcripts["other"])
	}

	record := transcripts["mine"]
	if record.Timestamp != first.Add(time.Minute).Format(time.RFC3339) {
		t.Fatalf("expected later timestamp, got %q", record.Timestamp)
	}
	if len(record.History) != 1 || record.History[0].Content != "v2" {
		t.Fatalf("expected latest snapshot, got %+v", record.History)
	}
}
