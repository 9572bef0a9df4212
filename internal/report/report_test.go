package report

import (
	"os"
	"strings"
	"testing"

	"github.com/cl455/lodz-rations/internal/rations"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	result := &rations.Result{
		Options: rations.Options{Unit: rations.UnitMass, Strategy: rations.StrategyEven},
		Window:  rations.ObservationWindow(),
		Total: rations.DailySeries{
			"1940-12-25": 50,
			"1940-12-26": 50,
		},
		GroupSeries: map[string]rations.DailySeries{
			"Sugars": {"1940-12-25": 50},
		},
		DaysWithoutFood: 1581,
	}

	path, err := Write(dir, result)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file unreadable: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"<strong>1581</strong> days without food",
		"March 13, 1940",
		"July 18, 1944",
		"class=\"mermaid\"",
		"xychart-beta",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteClairvoyantOmitsGroupChart(t *testing.T) {
	dir := t.TempDir()

	result := &rations.Result{
		Options: rations.Options{Unit: rations.UnitCalories, Strategy: rations.StrategyClairvoyant, LookaheadDays: 14},
		Window:  rations.ObservationWindow(),
		Total: rations.DailySeries{
			"1940-12-25": 120,
		},
		DaysWithoutFood: 900,
	}

	path, err := Write(dir, result)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	if !strings.Contains(html, "14-day lookahead") {
		t.Error("lookahead missing from headline")
	}
	if strings.Contains(html, "by food group") {
		t.Error("group chart rendered for a clairvoyant run with no breakdown")
	}
}
