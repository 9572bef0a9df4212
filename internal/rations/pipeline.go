package rations

import (
	"fmt"
	"slices"

	"github.com/cl455/lodz-rations/internal/airtable"

	"github.com/rs/zerolog/log"
)

// Unit selects the measure for every computed series.
type Unit string

const (
	UnitMass     Unit = "mass"
	UnitCalories Unit = "calories"
)

// Strategy selects how lump announcements become daily series.
type Strategy string

const (
	// StrategyAnnouncedOnly takes each announcement at face value: the full
	// amount lands on the start date, nothing is smoothed.
	StrategyAnnouncedOnly Strategy = "announced-only"
	// StrategyEven distributes each amount evenly across its stated duration.
	StrategyEven Strategy = "even"
	// StrategyClairvoyant applies even distribution, then greedily shifts
	// surplus from well-stocked days into starved days within a bounded
	// trailing window.
	StrategyClairvoyant Strategy = "clairvoyant"
)

// LookaheadWindows are the recognized clairvoyant window sizes, in days.
var LookaheadWindows = []int{7, 14, 30}

// Options is the configuration surface exposed to the presentation layer.
type Options struct {
	Unit          Unit
	Strategy      Strategy
	LookaheadDays int
}

// Validate rejects unsupported unit/strategy/window combinations before any
// computation begins.
func (o Options) Validate() error {
	switch o.Unit {
	case UnitMass, UnitCalories:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unsupported unit %q", o.Unit)}
	}

	switch o.Strategy {
	case StrategyAnnouncedOnly, StrategyEven:
		if o.LookaheadDays != 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("lookahead window is only meaningful with the %s strategy", StrategyClairvoyant)}
		}
	case StrategyClairvoyant:
		if !slices.Contains(LookaheadWindows, o.LookaheadDays) {
			return &ConfigurationError{Reason: fmt.Sprintf("lookahead window must be one of %v days, got %d", LookaheadWindows, o.LookaheadDays)}
		}
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unsupported strategy %q", o.Strategy)}
	}

	return nil
}

// Inputs is the normalized form of the two raw datasets, safe to reuse across
// strategy selections.
type Inputs struct {
	Announcements []Announcement
	Skeleton      ItemSeries
	Lookup        *CaloricLookup
	Window        DateRange
}

// BuildInputs normalizes the two raw record sets against the fixed
// observation window.
func BuildInputs(announcementRecords, caloricRecords []airtable.Record, excluded []string) (*Inputs, error) {
	window := ObservationWindow()

	announcements, skeleton, err := NormalizeAnnouncements(announcementRecords, window, excluded)
	if err != nil {
		return nil, err
	}

	lookup, err := BuildCaloricLookup(caloricRecords)
	if err != nil {
		return nil, err
	}

	return &Inputs{
		Announcements: announcements,
		Skeleton:      skeleton,
		Lookup:        lookup,
		Window:        window,
	}, nil
}

// Result is everything the presentation layer renders for one configuration.
type Result struct {
	Options Options   `json:"options"`
	Window  DateRange `json:"window"`

	// Per-item and per-food-group breakdowns; only populated for strategies
	// where the totals are a straight sum of the item series (redistribution
	// reshapes the total without attributing moves back to items).
	ItemSeries  ItemSeries             `json:"item_series,omitempty"`
	GroupSeries map[string]DailySeries `json:"group_series,omitempty"`

	Total           DailySeries `json:"total"`
	DaysWithoutFood int         `json:"days_without_food"`
}

// Run executes one full pipeline pass: allocation, optional calorie
// conversion, aggregation, optional redistribution, and counting. The stages
// are pure over their inputs; the one in-place mutation (redistribution)
// operates on a series owned exclusively by this pass.
func Run(in *Inputs, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var items ItemSeries
	switch opts.Strategy {
	case StrategyAnnouncedOnly:
		items = AllocateAnnouncedOnly(in.Announcements, in.Skeleton)
	default:
		// Clairvoyance redistributes the evenly allocated totals.
		items = AllocateEven(in.Announcements, in.Skeleton)
	}

	if opts.Unit == UnitCalories {
		items = ToCalories(items, in.Lookup)
	}

	total := AggregateTotal(items)

	result := &Result{
		Options: opts,
		Window:  in.Window,
	}

	if opts.Strategy == StrategyClairvoyant {
		total = Redistribute(total, opts.LookaheadDays)
	} else {
		result.ItemSeries = items
		result.GroupSeries = AggregateByGroup(items, in.Lookup.FoodGroup)
	}

	result.Total = total
	result.DaysWithoutFood = DaysWithoutFood(total)

	log.Info().
		Str("unit", string(opts.Unit)).
		Str("strategy", string(opts.Strategy)).
		Int("daysWithoutFood", result.DaysWithoutFood).
		Msg("Pipeline run complete")

	return result, nil
}
