package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/cl455/lodz-rations/internal/rations"
	"github.com/cl455/lodz-rations/internal/visuals"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// Metadata identifies one generated report.
type Metadata struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
}

type reportData struct {
	Meta       Metadata
	Unit       string
	Strategy   string
	Lookahead  int
	WindowFrom string
	WindowTo   string
	WindowDays int
	DaysNoFood int
	TotalChart string
	GroupChart string
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Łódź Rations Report</title>
<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: true });
</script>
<style>
body { font-family: Georgia, serif; max-width: 60em; margin: 2em auto; color: #222; }
h1 { font-size: 1.5em; }
.headline { font-size: 1.1em; margin: 1.5em 0; }
.meta { color: #777; font-size: 0.8em; margin-top: 3em; }
</style>
</head>
<body>
<h1>Łódź Rations Visualizer</h1>
<p class="headline">Given a <strong>{{.Strategy}}</strong> rationing strategy{{if .Lookahead}} with a {{.Lookahead}}-day lookahead{{end}},
this is the total amount of food ({{.Unit}}) that was available to a resident of the Łódź ghetto over time.</p>
{{if .TotalChart}}<pre class="mermaid">{{.TotalChart}}</pre>{{end}}
<p class="headline">This would have led to an estimated <strong>{{.DaysNoFood}}</strong> days without food
in the {{.WindowDays}} days between {{.WindowFrom}} and {{.WindowTo}}.</p>
{{if .GroupChart}}<pre class="mermaid">{{.GroupChart}}</pre>{{end}}
<p class="meta">Run {{.Meta.RunID}} &middot; generated {{.Meta.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
</body>
</html>
`

var page = template.Must(template.New("report").Parse(pageTemplate))

// Write renders the result into a standalone HTML report under dir and
// returns the file path.
func Write(dir string, result *rations.Result) (string, error) {
	meta := Metadata{
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
	}

	axis := "Grams"
	if result.Options.Unit == rations.UnitCalories {
		axis = "Calories (kcal)"
	}

	data := reportData{
		Meta:       meta,
		Unit:       string(result.Options.Unit),
		Strategy:   string(result.Options.Strategy),
		Lookahead:  result.Options.LookaheadDays,
		WindowFrom: result.Window.Start.Format("January 2, 2006"),
		WindowTo:   result.Window.End.Format("January 2, 2006"),
		WindowDays: result.Window.Days(),
		DaysNoFood: result.DaysWithoutFood,
		TotalChart: visuals.GenerateTotalChart(result.Total, axis),
		GroupChart: visuals.GenerateGroupChart(result.GroupSeries, axis),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.html", meta.RunID))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := page.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	log.Info().Str("path", path).Str("runId", meta.RunID.String()).Msg("Report written")
	return path, nil
}

// Open opens a generated report in the default browser.
func Open(path string) error {
	return browser.OpenFile(path)
}
