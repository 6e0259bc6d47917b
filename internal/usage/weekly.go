// Package usage aggregates Claude Code telemetry into weekly and
// live-session statistics behind an mtime-keyed staleness cache.
package usage

import (
	"time"

	"github.com/theirongolddev/cwatch/internal/model"
	"github.com/theirongolddev/cwatch/internal/source"
)

// weekBounds returns the Monday and Sunday ISO dates for the week
// containing now, local time, Monday as day 0.
func weekBounds(now time.Time) (monday, sunday string) {
	offset := (int(now.Weekday()) + 6) % 7
	mon := now.AddDate(0, 0, -offset)
	sun := mon.AddDate(0, 0, 6)
	return mon.Format("2006-01-02"), sun.Format("2006-01-02")
}

// weeklyFrom folds daily records whose date falls inside the current
// calendar week into totals. Dates are compared as ISO strings, which
// the stats document guarantees to be zero-padded. Token totals are
// keyed by friendly model name.
func weeklyFrom(doc model.StatsDocument, now time.Time) model.WeeklyStats {
	w := model.EmptyWeeklyStats()
	mon, sun := weekBounds(now)

	for _, day := range doc.DailyActivity {
		if day.Date < mon || day.Date > sun {
			continue
		}
		w.Messages += day.MessageCount
		w.Sessions += day.SessionCount
		w.ToolCalls += day.ToolCallCount
	}

	for _, day := range doc.DailyModelTokens {
		if day.Date < mon || day.Date > sun {
			continue
		}
		for id, n := range day.TokensByModel {
			w.TokensByModel[source.FriendlyModelName(id)] += n
		}
	}

	return w
}
