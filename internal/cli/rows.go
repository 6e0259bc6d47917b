package cli

import (
	"sort"

	"github.com/theirongolddev/cwatch/internal/model"
)

// WeeklyRows builds the display rows for a weekly aggregate, with
// per-model token totals ordered largest first.
func WeeklyRows(w model.WeeklyStats) []KV {
	rows := []KV{
		{Label: "Messages", Value: FormatCount(int64(w.Messages))},
		{Label: "Sessions", Value: FormatCount(int64(w.Sessions))},
		{Label: "Tool Calls", Value: FormatCount(int64(w.ToolCalls))},
	}

	if len(w.TokensByModel) == 0 {
		rows = append(rows, KV{Label: "Tokens", Value: "(none this week)"})
		return rows
	}

	names := make([]string, 0, len(w.TokensByModel))
	for name := range w.TokensByModel {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := w.TokensByModel[names[i]], w.TokensByModel[names[j]]
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		rows = append(rows, KV{Label: name, Value: FormatTokens(w.TokensByModel[name])})
	}
	return rows
}

// SessionRows builds the display rows for the current session.
func SessionRows(s model.SessionStats) []KV {
	return []KV{
		{Label: "Summary", Value: TruncateSummary(s.Summary, 40)},
		{Label: "Messages", Value: FormatCount(int64(s.Messages))},
		{Label: "Duration", Value: s.Duration},
		{},
		{Label: "Input", Value: FormatTokens(s.InputTokens)},
		{Label: "Output", Value: FormatTokens(s.OutputTokens)},
		{Label: "Cache Read", Value: FormatTokens(s.CacheReadTokens)},
		{Label: "Cache Create", Value: FormatTokens(s.CacheCreationTokens)},
	}
}
