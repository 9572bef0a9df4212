package airtable

import (
	"strconv"
	"strings"
	"time"
)

// Record is a single row from an Airtable table. Field names and types come
// straight from the base schema; numeric cells decode as float64, everything
// else as strings.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Client is the interface for fetching raw records from the Airtable base.
type Client interface {
	ListRecords(table string) ([]Record, error)
}

// Config holds the connection settings for the Airtable base.
type Config struct {
	APIKey string
	BaseID string

	// Table names within the base
	AnnouncementsTable string
	CaloricValuesTable string

	// Performance settings
	RequestDelay time.Duration
	CacheTTL     time.Duration

	// Snapshot settings. When Offline is set, no HTTP requests are made and
	// records are served from the snapshot directory only.
	SnapshotDir string
	Offline     bool

	// apiURL overrides the Airtable endpoint in tests.
	apiURL string
}

// NewClient creates a new Airtable client based on the provided configuration.
func NewClient(cfg Config) Client {
	return newRESTClient(cfg)
}

// FloatField extracts a numeric field value from a record. Airtable returns
// numbers as JSON numbers, but hand-entered cells occasionally come through as
// strings, so both are accepted.
func (r Record) FloatField(key string) (float64, bool) {
	v, ok := r.Fields[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// StringField extracts a string field value from a record.
func (r Record) StringField(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
