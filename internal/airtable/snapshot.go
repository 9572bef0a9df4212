package airtable

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// snapshotFile is the on-disk representation of a fetched table.
type snapshotFile struct {
	Table     string    `json:"table"`
	FetchedAt time.Time `json:"fetched_at"`
	Records   []Record  `json:"records"`
}

// SaveSnapshot writes the full record set of a table to the snapshot directory.
// The write goes through a temp file and rename so a crash mid-write never
// leaves a truncated snapshot behind.
func SaveSnapshot(dir string, table string, records []Record) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	snap := snapshotFile{
		Table:     table,
		FetchedAt: time.Now().UTC(),
		Records:   records,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := snapshotPath(dir, table)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	log.Debug().Str("table", table).Str("path", path).Int("records", len(records)).Msg("Snapshot written")
	return nil
}

// LoadSnapshot reads a previously saved table snapshot.
func LoadSnapshot(dir string, table string) ([]Record, error) {
	path := snapshotPath(dir, table)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt snapshot %s: %w", path, err)
	}

	log.Debug().Str("table", table).Time("fetchedAt", snap.FetchedAt).Int("records", len(snap.Records)).Msg("Snapshot loaded")
	return snap.Records, nil
}

func snapshotPath(dir string, table string) string {
	// Table names contain spaces; keep filenames shell-friendly.
	name := strings.ToLower(strings.ReplaceAll(table, " ", "_"))
	return filepath.Join(dir, name+".json")
}
