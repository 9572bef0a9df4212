package rations

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ZeroFill extends the series with explicit zeros so that every date between
// its first and last existing keys is present. Idempotent. Mutates the series
// in place and returns it.
func ZeroFill(total DailySeries) DailySeries {
	first, last, ok := total.Bounds()
	if !ok {
		return total
	}

	start, _ := time.Parse(DateLayout, first)
	end, _ := time.Parse(DateLayout, last)
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		key := t.Format(DateLayout)
		if _, ok := total[key]; !ok {
			total[key] = 0
		}
	}
	return total
}

// Redistribute simulates a consumer with foreknowledge of the next
// lookaheadDays days who defers consumption to smooth out future
// zero-availability days: rationing with a morsel put aside.
//
// For each starved date d (earliest first), surplus is pulled one unit at a
// time from the richest day in the trailing window [d-W, d) — the window never
// includes d itself — until no day in the window holds strictly more than d.
// Transfers move whole units (1 gram or 1 kcal) regardless of the magnitude of
// the series; each transfer is a zero-sum move, so the series total is
// conserved. The maximum is rescanned after every transfer, since it may shift
// as values change; on ties the earliest date wins.
//
// The series is the caller's to hand over: Redistribute mutates it in place as
// an owned, exclusive, temporary mutation and returns the same map.
func Redistribute(total DailySeries, lookaheadDays int) DailySeries {
	ZeroFill(total)

	starved := starvedDates(total)
	log.Debug().Int("starvedDates", len(starved)).Int("lookaheadDays", lookaheadDays).Msg("Redistributing surplus")

	for _, d := range starved {
		day, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		windowStart := day.AddDate(0, 0, -lookaheadDays)

		m := richestDate(total, windowStart, day, d)
		for total[m] > total[d] {
			total[d]++
			total[m]--
			m = richestDate(total, windowStart, day, d)
		}
	}

	return total
}

// starvedDates returns every date in the zero-filled domain, first through
// last key inclusive, whose total is zero. Ascending order, so the earliest
// starved day is replenished first.
func starvedDates(total DailySeries) []string {
	var starved []string
	for _, key := range total.SortedDates() {
		if total[key] == 0 {
			starved = append(starved, key)
		}
	}
	return starved
}

// richestDate scans [windowStart, day) left to right for the date holding the
// single largest total, defaulting to the starved date itself. Only a strictly
// greater value displaces the current maximum, so the first maximum wins —
// the earliest well-stocked day donates first. Dates before the start of the
// series are skipped.
func richestDate(total DailySeries, windowStart, day time.Time, starved string) string {
	maxKey := starved
	maxVal := total[starved]

	for t := windowStart; t.Before(day); t = t.AddDate(0, 0, 1) {
		key := t.Format(DateLayout)
		v, ok := total[key]
		if !ok {
			continue
		}
		if v > maxVal {
			maxVal = v
			maxKey = key
		}
	}
	return maxKey
}
