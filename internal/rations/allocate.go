package rations

import (
	"time"
)

// AllocateEven spreads each announcement's lump amounts evenly across the
// announcement's effective duration. For every item the per-day amount is
// lump/duration on each day of [start, start+duration).
//
// Announcements must be ordered ascending by nominal date: the fold is
// sequential and a later announcement overwrites an earlier one on shared
// dates, modeling a newer decree superseding one still nominally in effect.
// Writes landing outside the skeleton's date domain are clipped.
func AllocateEven(announcements []Announcement, skeleton ItemSeries) ItemSeries {
	out := skeleton.Clone()

	for _, a := range announcements {
		start, err := time.Parse(DateLayout, a.StartDate)
		if err != nil {
			continue // normalization already validated dates
		}
		for item, lump := range a.Items {
			series, ok := out[item]
			if !ok {
				continue
			}
			perDay := lump / float64(a.DurationDays)
			for offset := 0; offset < a.DurationDays; offset++ {
				key := start.AddDate(0, 0, offset).Format(DateLayout)
				if _, inWindow := series[key]; inWindow {
					series[key] = perDay
				}
			}
		}
	}

	return out
}

// AllocateAnnouncedOnly places each announcement's full lump amount solely on
// its start date, with no spreading: the stated amount taken at face value.
// Overwrite and ordering semantics match AllocateEven.
func AllocateAnnouncedOnly(announcements []Announcement, skeleton ItemSeries) ItemSeries {
	out := skeleton.Clone()

	for _, a := range announcements {
		for item, lump := range a.Items {
			series, ok := out[item]
			if !ok {
				continue
			}
			if _, inWindow := series[a.StartDate]; inWindow {
				series[a.StartDate] = lump
			}
		}
	}

	return out
}
