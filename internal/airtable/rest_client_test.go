package airtable

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testConfig(serverURL, snapshotDir string) Config {
	return Config{
		APIKey:       "test-key",
		BaseID:       "appTEST",
		RequestDelay: time.Millisecond,
		CacheTTL:     time.Minute,
		SnapshotDir:  snapshotDir,
		apiURL:       serverURL,
	}
}

func pagingHandler(t *testing.T, hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q, want Bearer test-key", got)
		}

		var page listResponse
		if r.URL.Query().Get("offset") == "" {
			page = listResponse{
				Records: []Record{
					{ID: "rec1", Fields: map[string]any{"Date": "1940-12-24"}},
					{ID: "rec2", Fields: map[string]any{"Date": "1940-12-30"}},
				},
				Offset: "page2",
			}
		} else {
			page = listResponse{
				Records: []Record{
					{ID: "rec3", Fields: map[string]any{"Date": "1941-01-02"}},
				},
			}
		}
		_ = json.NewEncoder(w).Encode(page)
	}
}

func TestListRecordsFollowsPagination(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(pagingHandler(t, &hits))
	defer server.Close()

	client := newRESTClient(testConfig(server.URL, t.TempDir()))

	records, err := client.ListRecords("Ration Announcements")
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 across two pages", len(records))
	}
	if hits.Load() != 2 {
		t.Errorf("server hits = %d, want 2", hits.Load())
	}

	// Second call must be served from the session cache.
	if _, err := client.ListRecords("Ration Announcements"); err != nil {
		t.Fatalf("cached ListRecords() error = %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hits after cached call = %d, want still 2", hits.Load())
	}
}

func TestListRecordsWritesSnapshot(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(pagingHandler(t, &hits))
	defer server.Close()

	dir := t.TempDir()
	client := newRESTClient(testConfig(server.URL, dir))
	if _, err := client.ListRecords("Ration Announcements"); err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}

	records, err := LoadSnapshot(dir, "Ration Announcements")
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("snapshot has %d records, want 3", len(records))
	}
}

func TestListRecordsOffline(t *testing.T) {
	dir := t.TempDir()
	seed := []Record{{ID: "rec1", Fields: map[string]any{"Date": "1940-12-24"}}}
	if err := SaveSnapshot(dir, "Ration Announcements", seed); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig("http://127.0.0.1:0", dir)
	cfg.Offline = true
	client := newRESTClient(cfg)

	records, err := client.ListRecords("Ration Announcements")
	if err != nil {
		t.Fatalf("offline ListRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "rec1" {
		t.Errorf("offline records = %+v, want the seeded snapshot", records)
	}
}

func TestListRecordsOfflineWithoutSnapshot(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0", t.TempDir())
	cfg.Offline = true
	client := newRESTClient(cfg)

	if _, err := client.ListRecords("Ration Announcements"); err == nil {
		t.Fatal("expected error in offline mode without a snapshot")
	}
}

func TestListRecordsFallsBackToSnapshotOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	seed := []Record{{ID: "rec1", Fields: map[string]any{"Date": "1940-12-24"}}}
	if err := SaveSnapshot(dir, "Ration Announcements", seed); err != nil {
		t.Fatal(err)
	}

	client := newRESTClient(testConfig(server.URL, dir))
	records, err := client.ListRecords("Ration Announcements")
	if err != nil {
		t.Fatalf("expected snapshot fallback, got error %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 from snapshot", len(records))
	}
}

func TestFloatField(t *testing.T) {
	rec := Record{Fields: map[string]any{
		"number": 250.0,
		"string": " 42.5 ",
		"text":   "unknown",
	}}

	tests := []struct {
		name     string
		key      string
		expected float64
		ok       bool
	}{
		{"JSONNumber", "number", 250, true},
		{"NumericString", "string", 42.5, true},
		{"NonNumericString", "text", 0, false},
		{"Missing", "absent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.FloatField(tt.key)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("FloatField(%q) = (%v, %v), want (%v, %v)", tt.key, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
