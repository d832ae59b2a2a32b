package report

import (
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/entity"
)

// anchor layouts tried per granularity, most specific first. A full date is
// accepted for monthly and yearly anchors and truncated below.
var anchorLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseAnchor(anchor string) (time.Time, bool) {
	for _, layout := range anchorLayouts {
		if t, err := time.ParseInLocation(layout, anchor, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolvePeriod computes the half-open reporting window for the config and
// the start of the preceding period of equal length. An unparseable anchor
// yields a zero-length window so aggregation degrades to "no data" instead of
// failing the whole report.
func ResolvePeriod(cfg entity.ReportConfig) entity.Period {
	t, ok := parseAnchor(cfg.Anchor)
	if !ok {
		return entity.Period{}
	}

	switch cfg.Granularity {
	case entity.GranularityDaily:
		start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return entity.Period{
			CurrentStart:  start,
			CurrentEnd:    start.AddDate(0, 0, 1),
			PreviousStart: start.AddDate(0, 0, -1),
		}
	case entity.GranularityMonthly:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return entity.Period{
			CurrentStart:  start,
			CurrentEnd:    start.AddDate(0, 1, 0),
			PreviousStart: start.AddDate(0, -1, 0),
		}
	case entity.GranularityYearly:
		start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return entity.Period{
			CurrentStart:  start,
			CurrentEnd:    start.AddDate(1, 0, 0),
			PreviousStart: start.AddDate(-1, 0, 0),
		}
	default:
		return entity.Period{}
	}
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
