// Package source reads Claude Code telemetry files from disk: the
// stats cache document, per-project session indexes, and JSONL session
// event logs.
package source

import (
	"encoding/json"
	"os"

	"github.com/theirongolddev/cwatch/internal/model"
)

// ReadStatsDocument parses the daily-activity stats document at path.
// A missing, unreadable, or structurally malformed document degrades to
// an empty document so callers render zeros instead of failing.
func ReadStatsDocument(path string) model.StatsDocument {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.StatsDocument{}
	}

	var doc model.StatsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.StatsDocument{}
	}
	return doc
}
