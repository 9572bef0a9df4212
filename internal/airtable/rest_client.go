package airtable

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const baseAPIURL = "https://api.airtable.com/v0"

// listResponse is the wire format of the Airtable list-records endpoint.
type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

type restClient struct {
	cfg        Config
	httpClient *http.Client

	// Tables may be fetched concurrently; the throttle gate is shared.
	throttleMu  sync.Mutex
	lastRequest time.Time

	// Session cache. Record sets do not vary across strategy selections, so
	// memoizing whole-table fetches is safe.
	cache      map[string]*cacheEntry
	cacheMutex sync.RWMutex
}

type cacheEntry struct {
	Records    []Record
	Expiration time.Time
}

func newRESTClient(cfg Config) *restClient {
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	return &restClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cache: make(map[string]*cacheEntry),
	}
}

func (c *restClient) getFromCache(table string) ([]Record, bool) {
	c.cacheMutex.RLock()
	defer c.cacheMutex.RUnlock()

	entry, ok := c.cache[table]
	if !ok {
		log.Debug().Str("table", table).Msg("Cache miss")
		return nil, false
	}
	if time.Now().After(entry.Expiration) {
		return nil, false
	}
	log.Debug().Str("table", table).Msg("Cache hit")
	return entry.Records, true
}

func (c *restClient) addToCache(table string, records []Record) {
	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	c.cache[table] = &cacheEntry{
		Records:    records,
		Expiration: time.Now().Add(c.cfg.CacheTTL),
	}
	log.Debug().Str("table", table).Int("records", len(records)).Msg("Added to cache")
}

func (c *restClient) throttle() {
	c.throttleMu.Lock()
	defer c.throttleMu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.cfg.RequestDelay {
		wait := c.cfg.RequestDelay - elapsed
		log.Debug().Dur("wait", wait).Msg("Throttling Airtable request")
		time.Sleep(wait)
	}
	c.lastRequest = time.Now()
}

// ListRecords fetches every record of a table, following offset pagination.
// Results are memoized for the session and snapshotted to disk so later runs
// can work offline.
func (c *restClient) ListRecords(table string) ([]Record, error) {
	if records, ok := c.getFromCache(table); ok {
		return records, nil
	}

	if c.cfg.Offline {
		records, err := LoadSnapshot(c.cfg.SnapshotDir, table)
		if err != nil {
			return nil, fmt.Errorf("offline mode and no usable snapshot for table %q: %w", table, err)
		}
		c.addToCache(table, records)
		return records, nil
	}

	records, err := c.fetchAllPages(table)
	if err != nil {
		// Fall back to a disk snapshot if one exists; stale data beats none
		// for a fixed historical dataset.
		if snap, snapErr := LoadSnapshot(c.cfg.SnapshotDir, table); snapErr == nil {
			log.Warn().Err(err).Str("table", table).Msg("Fetch failed, serving disk snapshot")
			c.addToCache(table, snap)
			return snap, nil
		}
		return nil, err
	}

	c.addToCache(table, records)
	if c.cfg.SnapshotDir != "" {
		if err := SaveSnapshot(c.cfg.SnapshotDir, table, records); err != nil {
			log.Warn().Err(err).Str("table", table).Msg("Failed to write snapshot")
		}
	}
	return records, nil
}

func (c *restClient) fetchAllPages(table string) ([]Record, error) {
	var all []Record
	offset := ""

	for {
		page, err := c.fetchPage(table, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Records...)
		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	log.Info().Str("table", table).Int("records", len(all)).Msg("Fetched table from Airtable")
	return all, nil
}

func (c *restClient) fetchPage(table string, offset string) (*listResponse, error) {
	c.throttle()

	params := url.Values{}
	if offset != "" {
		params.Set("offset", offset)
	}

	listURL := fmt.Sprintf("%s/%s/%s", c.baseURL(), c.cfg.BaseID, url.PathEscape(table))
	if enc := params.Encode(); enc != "" {
		listURL += "?" + enc
	}
	log.Debug().Str("url", listURL).Msg("Airtable list request")

	req, err := http.NewRequest("GET", listURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("airtable authentication failed (%d), check AIRTABLE_API_KEY", resp.StatusCode)
		case http.StatusNotFound:
			return nil, fmt.Errorf("airtable table %q not found in base %s", table, c.cfg.BaseID)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("airtable rate limit exceeded (429)")
		default:
			return nil, fmt.Errorf("airtable API returned status %d for table %q", resp.StatusCode, table)
		}
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode Airtable response: %w", err)
	}
	return &page, nil
}

// baseURL is overridable for tests.
func (c *restClient) baseURL() string {
	if c.cfg.apiURL != "" {
		return c.cfg.apiURL
	}
	return baseAPIURL
}
