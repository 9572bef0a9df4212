package visuals

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/cl455/lodz-rations/internal/rations"
)

// GenerateTotalChart creates a Mermaid xychart-beta line chart of the total
// daily series, bucketed to monthly sums so the ~1,588-day span stays
// readable on one axis.
func GenerateTotalChart(total rations.DailySeries, axisTitle string) string {
	if len(total) == 0 {
		return ""
	}

	monthly := make(map[string]float64)
	for date, v := range total {
		monthly[date[:7]] += v
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	slices.Sort(months)

	var labels []string
	var values []string
	maxY := 0.0
	for _, m := range months {
		label := m
		if t, err := time.Parse("2006-01", m); err == nil {
			label = t.Format("Jan 2006")
		}
		labels = append(labels, fmt.Sprintf("\"%s\"", label))
		values = append(values, fmt.Sprintf("%.1f", monthly[m]))
		if monthly[m] > maxY {
			maxY = monthly[m]
		}
	}

	// Breathing room above the highest month
	maxY *= 1.1
	if maxY < 1 {
		maxY = 1
	}

	var sb strings.Builder
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Total available per month\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"%s\" 0 --> %d\n", axisTitle, int(math.Ceil(maxY))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	return sb.String()
}

// GenerateGroupChart creates a Mermaid bar chart of the grand total per food
// group across the whole window.
func GenerateGroupChart(groups map[string]rations.DailySeries, axisTitle string) string {
	if len(groups) == 0 {
		return ""
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	var labels []string
	var values []string
	maxY := 0.0
	for _, name := range names {
		sum := groups[name].Sum()
		labels = append(labels, fmt.Sprintf("\"%s\"", name))
		values = append(values, fmt.Sprintf("%.1f", sum))
		if sum > maxY {
			maxY = sum
		}
	}

	maxY *= 1.1
	if maxY < 1 {
		maxY = 1
	}

	var sb strings.Builder
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Total available by food group\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"%s\" 0 --> %d\n", axisTitle, int(math.Ceil(maxY))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	return sb.String()
}
