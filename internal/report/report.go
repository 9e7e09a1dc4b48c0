// Package report builds the daily water-intake report: per-day totals, the
// headline numbers, and a rendered bar chart PNG.
//
// The chart is a versionless singleton artifact — every report view
// regenerates the file at the same path and the page references it by URL.
// Concurrent report requests can interleave writes; last writer wins, which
// is acceptable for a single-user tool.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dayoon-dev/health-tracker/internal/model"
)

const (
	chartWidth  = 700
	chartHeight = 350

	// Rendered into the placeholder image when there is nothing to chart.
	// Kept in ASCII because the bundled chart font has no Hangul glyphs.
	noDataMessage = "no data"
)

// Summary is the report's headline numbers.
type Summary struct {
	TotalML   int64   // sum over the user's full water history
	Days      int     // distinct calendar dates with at least one log
	AvgPerDay float64 // TotalML/Days rounded to one decimal; 0 when Days is 0
}

// DailyTotal is one bar of the chart: a calendar date and the summed intake
// for that date.
type DailyTotal struct {
	Date     string // ISO date, e.g. "2024-01-02"
	AmountML int64
}

// Summarize computes the headline numbers over the full log set.
func Summarize(logs []model.WaterLog) Summary {
	s := Summary{}
	dates := map[string]struct{}{}
	for _, l := range logs {
		s.TotalML += l.AmountML
		dates[l.Date()] = struct{}{}
	}
	s.Days = len(dates)
	if s.Days > 0 {
		// Round half away from zero to one decimal place.
		s.AvgPerDay = math.Round(float64(s.TotalML)/float64(s.Days)*10) / 10
	}
	return s
}

// DailyTotals groups logs by calendar date and sums each day's intake.
// Results come back in ascending date order, which is also bar order —
// ISO date strings sort chronologically.
func DailyTotals(logs []model.WaterLog) []DailyTotal {
	byDate := map[string]int64{}
	for _, l := range logs {
		byDate[l.Date()] += l.AmountML
	}

	totals := make([]DailyTotal, 0, len(byDate))
	for date, amount := range byDate {
		totals = append(totals, DailyTotal{Date: date, AmountML: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// Build computes the summary and writes the chart PNG to outputPath,
// overwriting whatever was there. With no logs it writes a "no data"
// placeholder instead — the report page never shows a blank chart.
func Build(logs []model.WaterLog, outputPath string) (Summary, error) {
	summary := Summarize(logs)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return Summary{}, fmt.Errorf("report: creating chart directory: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("report: creating chart file: %w", err)
	}

	if len(logs) == 0 {
		err = renderPlaceholder(f)
	} else {
		err = renderChart(DailyTotals(logs), f)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Summary{}, fmt.Errorf("report: rendering chart: %w", err)
	}

	return summary, nil
}

// renderChart draws one bar per distinct date, labeled with the ISO date
// rotated for readability.
func renderChart(totals []DailyTotal, w io.Writer) error {
	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, chart.Value{
			Label: t.Date,
			Value: float64(t.AmountML),
		})
	}

	graph := chart.BarChart{
		Title:  "Daily Water Intake",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name: "ml",
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}

// renderPlaceholder draws a plain image carrying the no-data message,
// centred, on a white background.
func renderPlaceholder(w io.Writer) error {
	r, err := chart.PNG(chartWidth, chartHeight)
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(chartWidth, 0)
	r.LineTo(chartWidth, chartHeight)
	r.LineTo(0, chartHeight)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontSize(18)
	r.SetFontColor(drawing.ColorBlack)

	box := r.MeasureText(noDataMessage)
	r.Text(noDataMessage, (chartWidth-box.Width())/2, (chartHeight+box.Height())/2)

	return r.Save(w)
}
