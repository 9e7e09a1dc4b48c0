package handler

import (
	"net/http"

	"github.com/dayoon-dev/health-tracker/internal/report"
)

// ReportPage renders the water report: total, day count, daily average, and
// the bar chart image. The chart PNG is regenerated on every view and
// overwrites the previous file — the template references it by its fixed
// static URL, so there is nothing to cache or invalidate.
//
// HTTP: GET /report
func (p *Pages) ReportPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	// Full history, not just a page of it: the totals cover everything.
	logs, err := p.water.List(ctx, user, 0)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	summary, err := report.Build(logs, p.chartPath)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "report", map[string]any{
		"Title":      "Water Report",
		"User":       user,
		"TotalWater": summary.TotalML,
		"Days":       summary.Days,
		"AvgPerDay":  summary.AvgPerDay,
		"ChartURL":   p.chartURL,
	})
}
