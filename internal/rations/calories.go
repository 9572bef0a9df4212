package rations

import (
	"github.com/cl455/lodz-rations/internal/airtable"

	"github.com/rs/zerolog/log"
)

// Field names in the "Caloric Value" table.
const (
	fieldLabel       = "Label"
	fieldKcalPer100g = "Caloric Value (kcal/100g)"
	fieldFoodGroup   = "Food Group"
)

// CaloricLookup maps item labels to their nutritional metadata. Items absent
// from the lookup are treated as non-edible and silently excluded from every
// calorie-based view; that is a deliberate policy, not a data error.
type CaloricLookup struct {
	KcalPer100g map[string]float64
	FoodGroup   map[string]string
}

// BuildCaloricLookup turns raw nutrition records into label-keyed lookups.
// A record missing its label, caloric value or food group aborts ingestion.
func BuildCaloricLookup(records []airtable.Record) (*CaloricLookup, error) {
	lookup := &CaloricLookup{
		KcalPer100g: make(map[string]float64, len(records)),
		FoodGroup:   make(map[string]string, len(records)),
	}

	for i, rec := range records {
		label, ok := rec.StringField(fieldLabel)
		if !ok {
			return nil, &MalformedRecordError{Table: "Caloric Value", Index: i, RecordID: rec.ID, Field: fieldLabel}
		}
		kcal, ok := rec.FloatField(fieldKcalPer100g)
		if !ok {
			return nil, &MalformedRecordError{Table: "Caloric Value", Index: i, RecordID: rec.ID, Field: fieldKcalPer100g}
		}
		group, ok := rec.StringField(fieldFoodGroup)
		if !ok {
			return nil, &MalformedRecordError{Table: "Caloric Value", Index: i, RecordID: rec.ID, Field: fieldFoodGroup}
		}

		lookup.KcalPer100g[label] = kcal
		lookup.FoodGroup[label] = group
	}

	log.Debug().Int("items", len(lookup.KcalPer100g)).Msg("Built caloric lookup")
	return lookup, nil
}

// ToCalories converts per-item daily mass series (grams) into daily calorie
// series (kcal) via the lookup. Items without a caloric value are omitted
// entirely from the output, not zeroed.
func ToCalories(items ItemSeries, lookup *CaloricLookup) ItemSeries {
	out := make(ItemSeries)
	for item, series := range items {
		kcal, ok := lookup.KcalPer100g[item]
		if !ok {
			continue
		}
		converted := make(DailySeries, len(series))
		for date, grams := range series {
			converted[date] = grams * (kcal / 100.0)
		}
		out[item] = converted
	}
	return out
}
