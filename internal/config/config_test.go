package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExcludedItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "excluded.yaml")
	content := "- Seife/Soap (g)\n- Asche/Ash (kg)\n- Kerzen/Candles (g)\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	labels, err := loadExcludedItems(path)
	if err != nil {
		t.Fatalf("loadExcludedItems() error = %v", err)
	}
	if len(labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(labels))
	}
	if labels[0] != "Seife/Soap (g)" {
		t.Errorf("labels[0] = %q, want Seife/Soap (g)", labels[0])
	}
}

func TestLoadExcludedItemsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "excluded.yaml")
	if err := os.WriteFile(path, []byte("{:"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadExcludedItems(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadExcludedItemsMissingFile(t *testing.T) {
	if _, err := loadExcludedItems(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LODZ_TEST_KEY", "value")
	if got := getEnv("LODZ_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv() = %q, want value", got)
	}
	if got := getEnv("LODZ_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("LODZ_TEST_BOOL", "true")
	if !getEnvBool("LODZ_TEST_BOOL", false) {
		t.Error("getEnvBool() = false, want true")
	}
	t.Setenv("LODZ_TEST_BOOL", "not-a-bool")
	if !getEnvBool("LODZ_TEST_BOOL", true) {
		t.Error("getEnvBool() should fall back on unparsable values")
	}
}
