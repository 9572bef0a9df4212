package rations

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cl455/lodz-rations/internal/airtable"

	"github.com/rs/zerolog/log"
)

// Field names in the "Ration Announcements" table.
const (
	fieldDate      = "Date"
	fieldBeginDate = "Begin Date"
	fieldDuration  = "Est. Duration"
)

// defaultDurationDays is assumed when an announcement carries no duration text.
const defaultDurationDays = 10

// Announcement is one ration decree: a dated record of items and lump amounts,
// an effective start date, and a duration over which the amounts were meant to
// last. Amounts are always in grams. Immutable once normalized.
type Announcement struct {
	Date         string             `json:"date"`
	StartDate    string             `json:"start_date"`
	DurationDays int                `json:"duration_in_days"`
	Items        map[string]float64 `json:"items"`
}

// NormalizeAnnouncements turns raw table records into a canonical announcement
// list sorted ascending by nominal date, plus a zero-filled skeleton series for
// every retained item spanning the full observation window.
//
// Per record: the start date prefers the explicit begin-date field, falling
// back to the record's own date; the duration is parsed from free text
// (default 10 days); items are collected from every field whose key carries a
// gram or kilogram marker, kilogram values converted to grams. Labels listed
// in excluded are dropped (non-edible entries like ash or soap).
func NormalizeAnnouncements(records []airtable.Record, window DateRange, excluded []string) ([]Announcement, ItemSeries, error) {
	excludedSet := make(map[string]bool, len(excluded))
	for _, label := range excluded {
		excludedSet[label] = true
	}

	announcements := make([]Announcement, 0, len(records))
	skeleton := make(ItemSeries)

	for i, rec := range records {
		date, hasDate := rec.StringField(fieldDate)
		begin, hasBegin := rec.StringField(fieldBeginDate)
		if !hasDate && !hasBegin {
			return nil, nil, &MalformedRecordError{
				Table:    "Ration Announcements",
				Index:    i,
				RecordID: rec.ID,
				Field:    fieldDate,
			}
		}
		if !hasDate {
			date = begin
		}
		start := date
		if hasBegin {
			// An explicit begin date overrides "effective immediately".
			start = begin
		}

		for _, d := range []string{date, start} {
			if _, err := time.Parse(DateLayout, d); err != nil {
				return nil, nil, &MalformedRecordError{
					Table:    "Ration Announcements",
					Index:    i,
					RecordID: rec.ID,
					Field:    fieldDate,
					Detail:   "unparsable date " + strconv.Quote(d),
				}
			}
		}

		duration := defaultDurationDays
		if text, ok := rec.StringField(fieldDuration); ok {
			parsed, err := ParseDurationDays(text)
			if err != nil {
				return nil, nil, &MalformedRecordError{
					Table:    "Ration Announcements",
					Index:    i,
					RecordID: rec.ID,
					Field:    fieldDuration,
					Detail:   err.Error(),
				}
			}
			duration = parsed
		}

		items := make(map[string]float64)
		for key := range rec.Fields {
			isGrams := strings.Contains(key, "(g)")
			isKilos := strings.Contains(key, "(kg)")
			if !isGrams && !isKilos {
				continue
			}
			if excludedSet[key] {
				continue
			}
			amount, ok := rec.FloatField(key)
			if !ok {
				log.Warn().Str("record", rec.ID).Str("field", key).Msg("Non-numeric amount in mass field, skipping")
				continue
			}
			if isKilos {
				amount *= 1000
			}
			items[key] = amount

			if _, ok := skeleton[key]; !ok {
				skeleton[key] = zeroSeries(window)
			}
		}

		announcements = append(announcements, Announcement{
			Date:         date,
			StartDate:    start,
			DurationDays: duration,
			Items:        items,
		})
	}

	slices.SortFunc(announcements, func(a, b Announcement) int {
		return strings.Compare(a.Date, b.Date)
	})

	log.Debug().
		Int("announcements", len(announcements)).
		Int("items", len(skeleton)).
		Msg("Normalized ration announcements")

	return announcements, skeleton, nil
}

// ParseDurationDays extracts the effective duration from free text like
// "5 days", "3 days (per coupon)" or "2 week". The leading integer token is
// taken as the count, multiplied by 7 when the text mentions weeks.
func ParseDurationDays(text string) (int, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty duration text")
	}
	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, fmt.Errorf("unparsable duration %q: %w", text, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("non-positive duration %q", text)
	}
	if strings.Contains(text, "week") {
		n *= 7
	}
	return n, nil
}
