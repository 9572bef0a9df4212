package rations

import (
	"testing"
)

func TestAggregateTotalAdditivity(t *testing.T) {
	items := ItemSeries{
		"Zucker/Sugar (g)": {"1940-12-25": 50, "1940-12-26": 50},
		"Brot/Bread (g)":   {"1940-12-25": 400, "1940-12-26": 0},
	}

	total := AggregateTotal(items)

	for _, date := range []string{"1940-12-25", "1940-12-26"} {
		var want float64
		for _, series := range items {
			want += series[date]
		}
		if got := total[date]; got != want {
			t.Errorf("total[%s] = %v, want %v", date, got, want)
		}
	}
}

func TestAggregateTotalMissingDateIsZero(t *testing.T) {
	items := ItemSeries{
		"Zucker/Sugar (g)": {"1940-12-25": 50},
		"Brot/Bread (g)":   {"1940-12-26": 400},
	}

	total := AggregateTotal(items)

	if got := total["1940-12-25"]; got != 50 {
		t.Errorf("total[1940-12-25] = %v, want 50", got)
	}
	if got := total["1940-12-26"]; got != 400 {
		t.Errorf("total[1940-12-26] = %v, want 400", got)
	}
}

func TestAggregateByGroup(t *testing.T) {
	items := ItemSeries{
		"Zucker/Sugar (g)": {"1940-12-25": 50},
		"Butter (g)":       {"1940-12-25": 20},
		"Margarine (g)":    {"1940-12-25": 30},
		"Seife/Soap (g)":   {"1940-12-25": 100},
	}
	groups := map[string]string{
		"Zucker/Sugar (g)": "Sugars",
		"Butter (g)":       "Fats",
		"Margarine (g)":    "Fats",
	}

	byGroup := AggregateByGroup(items, groups)

	if got := byGroup["Fats"]["1940-12-25"]; got != 50 {
		t.Errorf("Fats total = %v, want 50", got)
	}
	if got := byGroup["Sugars"]["1940-12-25"]; got != 50 {
		t.Errorf("Sugars total = %v, want 50", got)
	}
	if _, ok := byGroup["Seife/Soap (g)"]; ok {
		t.Error("ungrouped item leaked into the food-group view")
	}
	if len(byGroup) != 2 {
		t.Errorf("got %d groups, want 2", len(byGroup))
	}
}

func TestDaysWithoutFood(t *testing.T) {
	tests := []struct {
		name     string
		total    DailySeries
		expected int
	}{
		{"Empty", DailySeries{}, 0},
		{"AllFed", DailySeries{"1940-12-25": 1, "1940-12-26": 2, "1940-12-27": 3}, 0},
		{"ZeroCounts", DailySeries{"1940-12-25": 1, "1940-12-26": 0, "1940-12-27": 3}, 1},
		{"GapCounts", DailySeries{"1940-12-25": 1, "1940-12-28": 3}, 2},
		{"LastDayExcluded", DailySeries{"1940-12-25": 1, "1940-12-26": 0}, 0},
		{"EntirelyStarved", DailySeries{"1940-12-25": 0, "1940-12-30": 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysWithoutFood(tt.total); got != tt.expected {
				t.Errorf("DaysWithoutFood() = %d, want %d", got, tt.expected)
			}
		})
	}
}
