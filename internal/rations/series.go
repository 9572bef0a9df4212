package rations

import (
	"slices"
	"time"
)

// DateLayout is the canonical key format for every daily series. Lexicographic
// order of keys equals chronological order.
const DateLayout = "2006-01-02"

// The canonical ghetto-rations period: first known announcement date through
// last known announcement date. The end is exclusive in date enumeration.
var (
	ObservationStart = time.Date(1940, time.March, 13, 0, 0, 0, 0, time.UTC)
	ObservationEnd   = time.Date(1944, time.July, 18, 0, 0, 0, 0, time.UTC)
)

// ObservationWindow returns the fixed date range used for all range computations.
func ObservationWindow() DateRange {
	return DateRange{Start: ObservationStart, End: ObservationEnd}
}

// DateRange is a half-open interval of calendar days [Start, End).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of calendar days in the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Enumerate returns every date key in the range in ascending order.
func (r DateRange) Enumerate() []string {
	keys := make([]string, 0, r.Days())
	for t := r.Start; t.Before(r.End); t = t.AddDate(0, 0, 1) {
		keys = append(keys, t.Format(DateLayout))
	}
	return keys
}

// Contains reports whether a date key falls inside the range.
func (r DateRange) Contains(key string) bool {
	return key >= r.Start.Format(DateLayout) && key < r.End.Format(DateLayout)
}

// DailySeries maps a date key to a non-negative amount (grams or kcal).
type DailySeries map[string]float64

// SortedDates returns the series keys in ascending order.
func (s DailySeries) SortedDates() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Bounds returns the first and last date keys of the series.
func (s DailySeries) Bounds() (first, last string, ok bool) {
	if len(s) == 0 {
		return "", "", false
	}
	for k := range s {
		if first == "" || k < first {
			first = k
		}
		if k > last {
			last = k
		}
	}
	return first, last, true
}

// Sum returns the total of all values in the series.
func (s DailySeries) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Clone returns an independent copy of the series.
func (s DailySeries) Clone() DailySeries {
	out := make(DailySeries, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ItemSeries maps an item label to its daily series. After normalization every
// item covers the identical full-window date domain.
type ItemSeries map[string]DailySeries

// Clone returns an independent deep copy.
func (s ItemSeries) Clone() ItemSeries {
	out := make(ItemSeries, len(s))
	for item, series := range s {
		out[item] = series.Clone()
	}
	return out
}

// zeroSeries builds an all-zero daily series spanning the given range.
func zeroSeries(window DateRange) DailySeries {
	series := make(DailySeries, window.Days())
	for t := window.Start; t.Before(window.End); t = t.AddDate(0, 0, 1) {
		series[t.Format(DateLayout)] = 0
	}
	return series
}
