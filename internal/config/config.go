package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cl455/lodz-rations/internal/airtable"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Airtable      airtable.Config
	DataPath      string
	LogDir        string
	CacheDir      string
	ReportDir     string
	ExcludedItems []string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	cacheDir := filepath.Join(dataPath, "cache")
	reportDir := filepath.Join(dataPath, "reports")

	for _, dir := range []string{logDir, cacheDir, reportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("path", dir).Msg("Failed to create data directory")
		}
	}

	delaySecs, _ := strconv.Atoi(getEnv("AIRTABLE_REQUEST_DELAY_SECONDS", "1"))
	cacheTTLMins, _ := strconv.Atoi(getEnv("AIRTABLE_CACHE_TTL_MINUTES", "60"))

	cfg := &AppConfig{
		Airtable: airtable.Config{
			APIKey:             getEnv("AIRTABLE_API_KEY", ""),
			BaseID:             getEnv("AIRTABLE_BASE_ID", ""),
			AnnouncementsTable: getEnv("AIRTABLE_ANNOUNCEMENTS_TABLE", "Ration Announcements"),
			CaloricValuesTable: getEnv("AIRTABLE_CALORIC_VALUES_TABLE", "Caloric Value"),
			RequestDelay:       time.Duration(delaySecs) * time.Second,
			CacheTTL:           time.Duration(cacheTTLMins) * time.Minute,
			SnapshotDir:        cacheDir,
			Offline:            getEnvBool("AIRTABLE_OFFLINE", false),
		},
		DataPath:  dataPath,
		LogDir:    logDir,
		CacheDir:  cacheDir,
		ReportDir: reportDir,
	}

	// 4. Optional policy file: non-edible item labels to exclude at normalization
	if path := getEnv("EXCLUDED_ITEMS_FILE", ""); path != "" {
		excluded, err := loadExcludedItems(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load excluded items file: %w", err)
		}
		cfg.ExcludedItems = excluded
		log.Debug().Int("count", len(excluded)).Str("path", path).Msg("Loaded excluded item labels")
	}

	return cfg, nil
}

// loadExcludedItems reads a YAML list of item labels (ash, fuel, soap and similar
// non-edible entries that appear in the announcements table).
func loadExcludedItems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var labels []string
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return labels, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
