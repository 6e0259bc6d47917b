// Package model defines domain types for cwatch usage telemetry.
package model

// DailyActivity is one calendar day's rollup from the stats document.
type DailyActivity struct {
	Date          string `json:"date"`
	MessageCount  int    `json:"messageCount"`
	SessionCount  int    `json:"sessionCount"`
	ToolCallCount int    `json:"toolCallCount"`
}

// DailyModelTokens holds one day's token consumption keyed by model ID.
type DailyModelTokens struct {
	Date          string           `json:"date"`
	TokensByModel map[string]int64 `json:"tokensByModel"`
}

// StatsDocument is the top-level shape of the stats cache file written
// by Claude Code.
type StatsDocument struct {
	DailyActivity    []DailyActivity    `json:"dailyActivity"`
	DailyModelTokens []DailyModelTokens `json:"dailyModelTokens"`
}

// WeeklyStats aggregates usage for the current Monday-Sunday week.
// TokensByModel is keyed by friendly display name.
type WeeklyStats struct {
	Messages      int              `json:"messages"`
	Sessions      int              `json:"sessions"`
	ToolCalls     int              `json:"tool_calls"`
	TokensByModel map[string]int64 `json:"tokens_by_model"`
}

// EmptyWeeklyStats returns the zero aggregate rendered when no stats
// document is available.
func EmptyWeeklyStats() WeeklyStats {
	return WeeklyStats{TokensByModel: make(map[string]int64)}
}

// Clone returns a copy that shares no map state with the receiver.
func (w WeeklyStats) Clone() WeeklyStats {
	out := w
	out.TokensByModel = make(map[string]int64, len(w.TokensByModel))
	for k, v := range w.TokensByModel {
		out.TokensByModel[k] = v
	}
	return out
}

// SessionIndexEntry is one session's metadata from a project's
// sessions-index.json. FileMtime is epoch seconds as recorded by the
// indexer, not an independent stat of the session file.
type SessionIndexEntry struct {
	FileMtime   float64 `json:"fileMtime"`
	FullPath    string  `json:"fullPath"`
	Summary     string  `json:"summary"`
	FirstPrompt string  `json:"firstPrompt"`
	SessionID   string  `json:"sessionId"`
	Created     string  `json:"created"`
	Modified    string  `json:"modified"`
}

// SessionStats holds aggregated metrics for the current live session.
type SessionStats struct {
	SessionID           string `json:"session_id"`
	Summary             string `json:"summary"`
	Messages            int    `json:"messages"`
	Duration            string `json:"duration"`
	InputTokens         int64  `json:"input_tokens"`
	OutputTokens        int64  `json:"output_tokens"`
	CacheReadTokens     int64  `json:"cache_read"`
	CacheCreationTokens int64  `json:"cache_create"`
}

// EmptySessionStats returns the fixed record rendered when no live
// session exists anywhere.
func EmptySessionStats() SessionStats {
	return SessionStats{
		Summary:  "No active session",
		Duration: "0s",
	}
}
