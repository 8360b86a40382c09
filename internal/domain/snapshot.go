package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is one decoded leaderboard document: every player entry in
// document order, plus the metadata block.
type Snapshot struct {
	Players  []PlayerEntry
	Metadata Metadata
}

// UnmarshalJSON decodes the snapshot with a token walk instead of a map so
// that document order is retained; rating ties later resolve in the order
// the upstream emitted them.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot: expected JSON object, got %v", tok)
	}

	s.Players = s.Players[:0]
	s.Metadata = Metadata{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("snapshot: expected object key, got %v", keyTok)
		}

		if key == MetadataKey {
			if err := dec.Decode(&s.Metadata); err != nil {
				return fmt.Errorf("snapshot metadata: %w", err)
			}
			continue
		}

		var record PlayerRecord
		if err := dec.Decode(&record); err != nil {
			return fmt.Errorf("snapshot player %q: %w", key, err)
		}
		s.Players = append(s.Players, PlayerEntry{Name: key, Record: record})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
