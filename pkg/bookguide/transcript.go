package bookguide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is one saved transcript: a snapshot of a session's exchange
// log with the save timestamp.
type Record struct {
	Timestamp string     `json:"timestamp"`
	History   []Exchange `json:"history"`
}

// Store persists transcripts as a single JSON document mapping session
// IDs to records. Saving one session rewrites the whole document, so
// concurrent writers from separate processes can lose updates; the tool
// assumes single-process usage.
type Store struct {
	path    string
	logger  Logger
	verbose bool
	now     func() time.Time
}

// NewStore creates a store backed by the JSON document at path.
func NewStore(path string, logger Logger, verbose bool) *Store {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Store{
		path:    path,
		logger:  logger,
		verbose: verbose,
		now:     time.Now,
	}
}

// storedRecord defers history decoding so malformed entries can be
// normalized instead of failing the whole document.
type storedRecord struct {
	Timestamp string            `json:"timestamp"`
	History   []json.RawMessage `json:"history"`
}

// Load reads the transcript document. A missing file or malformed JSON
// yields an empty mapping; Load never fails the caller.
func (s *Store) Load() map[string]Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		debugf(s.verbose, s.logger, "[verbose] transcripts: read %s: %v (starting empty)", s.path, err)
		return map[string]Record{}
	}

	var raw map[string]storedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		debugf(s.verbose, s.logger, "[verbose] transcripts: parse %s: %v (starting empty)", s.path, err)
		return map[string]Record{}
	}

	transcripts := make(map[string]Record, len(raw))
	for id, rec := range raw {
		history := make([]Exchange, 0, len(rec.History))
		for _, entry := range rec.History {
			history = append(history, decodeExchange(entry))
		}
		transcripts[id] = Record{Timestamp: rec.Timestamp, History: history}
	}
	return transcripts
}

// decodeExchange normalizes one stored history entry. Two shapes are
// tolerated: a plain {role, parts} record, and an opaque object kept as
// its JSON text with the role inferred from the presence of a role key
// (absent means a user turn).
func decodeExchange(raw json.RawMessage) Exchange {
	var wire struct {
		Role  *string `json:"role"`
		Parts *string `json:"parts"`
	}
	if err := json.Unmarshal(raw, &wire); err == nil && wire.Parts != nil {
		role := RoleUser
		if wire.Role != nil && *wire.Role != "" {
			role = Role(*wire.Role)
		}
		return Exchange{Role: role, Content: *wire.Parts}
	}

	role := RoleUser
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err == nil {
		if _, ok := probe["role"]; ok {
			role = RoleModel
		}
	}
	return Exchange{Role: role, Content: string(bytes.TrimSpace(raw))}
}

// Save snapshots one session's exchanges under its ID, leaving other
// sessions untouched, and rewrites the whole document pretty-printed.
// The write is not atomic.
func (s *Store) Save(sessionID string, exchanges []Exchange) error {
	transcripts := s.Load()
	transcripts[sessionID] = Record{
		Timestamp: s.now().Format(time.RFC3339),
		History:   exchanges,
	}

	data, err := json.MarshalIndent(transcripts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcripts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	debugf(s.verbose, s.logger, "[verbose] transcripts: saved session=%s exchanges=%d", sessionID, len(exchanges))
	return nil
}
