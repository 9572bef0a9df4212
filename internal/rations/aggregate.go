package rations

import (
	"time"
)

// AggregateTotal sums the per-item values into a single total-by-date series.
// A date missing from one item's series simply contributes zero.
func AggregateTotal(items ItemSeries) DailySeries {
	total := make(DailySeries)
	for _, series := range items {
		for date, amount := range series {
			total[date] += amount
		}
	}
	return total
}

// AggregateByGroup re-aggregates item series through the item-to-food-group
// lookup. Items without a food group entry are presumed non-edible and are
// silently dropped from this view.
func AggregateByGroup(items ItemSeries, foodGroup map[string]string) map[string]DailySeries {
	groups := make(map[string]DailySeries)
	for item, series := range items {
		group, ok := foodGroup[item]
		if !ok {
			continue
		}
		target, ok := groups[group]
		if !ok {
			target = make(DailySeries, len(series))
			groups[group] = target
		}
		for date, amount := range series {
			target[date] += amount
		}
	}
	return groups
}

// DaysWithoutFood walks every date in [first_key, last_key) of the series and
// counts those that are absent or exactly zero. Used identically on the raw,
// announced-only and redistributed aggregates.
func DaysWithoutFood(total DailySeries) int {
	first, last, ok := total.Bounds()
	if !ok {
		return 0
	}

	start, err := time.Parse(DateLayout, first)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, last)
	if err != nil {
		return 0
	}

	count := 0
	for t := start; t.Before(end); t = t.AddDate(0, 0, 1) {
		if v, ok := total[t.Format(DateLayout)]; !ok || v == 0 {
			count++
		}
	}
	return count
}
