package usage

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/cwatch/internal/model"
	"github.com/theirongolddev/cwatch/internal/source"
)

// summaryPromptLimit caps the first-prompt fallback used when the index
// carries no stored summary.
const summaryPromptLimit = 50

// findLatestSession returns the index entry with the greatest recorded
// fileMtime whose session file still exists on disk. The comparison is
// strictly greater-than over a fixed traversal order, so the first
// entry seen wins exact ties. Entries pointing at missing files are
// skipped, not selected.
//
// The selection trusts the fileMtime recorded inside the index
// documents rather than statting each session file; a stale index can
// therefore pick a file that is not truly newest on disk.
func findLatestSession(claudeDir string) (model.SessionIndexEntry, string, bool) {
	var (
		best      model.SessionIndexEntry
		bestPath  string
		bestMtime float64
		found     bool
	)

	for _, idx := range source.ScanSessionIndexes(claudeDir) {
		for _, entry := range idx.Entries {
			if entry.FileMtime <= bestMtime {
				continue
			}
			info, err := os.Stat(entry.FullPath)
			if err != nil || info.IsDir() {
				continue
			}
			best = entry
			bestPath = entry.FullPath
			bestMtime = entry.FileMtime
			found = true
		}
	}

	return best, bestPath, found
}

// sessionFrom replays one session's event log and derives its stats.
// Assistant usage is counted at most once per non-empty request ID;
// events without a request ID are never deduplicated against each
// other. User events count toward the message total only when they are
// not meta events and carry non-empty plain-string content.
func sessionFrom(entry model.SessionIndexEntry, path string) model.SessionStats {
	s := model.EmptySessionStats()
	s.SessionID = entry.SessionID

	s.Summary = entry.Summary
	if s.Summary == "" {
		s.Summary = truncateRunes(entry.FirstPrompt, summaryPromptLimit)
	}

	if secs, ok := spanSeconds(entry.Created, entry.Modified); ok {
		s.Duration = FormatDuration(secs)
	}

	seen := make(map[string]struct{})

	source.ParseSessionFile(path, func(ev source.SessionEvent) {
		switch ev.Type {
		case "user":
			if ev.IsMeta {
				return
			}
			if ev.Message != nil && ev.Message.Role == "user" && ev.Message.ContentString() != "" {
				s.Messages++
			}

		case "assistant":
			if ev.RequestID != "" {
				if _, dup := seen[ev.RequestID]; dup {
					return
				}
				seen[ev.RequestID] = struct{}{}
			}
			if ev.Message == nil || ev.Message.Usage == nil {
				return
			}
			u := ev.Message.Usage
			s.InputTokens += u.InputTokens
			s.OutputTokens += u.OutputTokens
			s.CacheReadTokens += u.CacheReadInputTokens
			s.CacheCreationTokens += u.CacheCreationInputTokens
		}
	})

	return s
}

// spanSeconds returns the whole seconds between two RFC3339 timestamps.
// Either timestamp missing or unparseable yields ok=false, leaving the
// caller's duration at its default.
func spanSeconds(created, modified string) (int64, bool) {
	if created == "" || modified == "" {
		return 0, false
	}
	t0, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return 0, false
	}
	t1, err := time.Parse(time.RFC3339Nano, modified)
	if err != nil {
		return 0, false
	}
	return int64(t1.Sub(t0).Seconds()), true
}

// FormatDuration renders a second count as "1h 2m 5s", "2m 5s", or
// "45s" depending on magnitude.
func FormatDuration(secs int64) string {
	if secs <= 0 {
		return "0s"
	}
	switch {
	case secs >= 3600:
		return fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60)
	case secs >= 60:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
