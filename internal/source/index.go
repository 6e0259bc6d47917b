package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/theirongolddev/cwatch/internal/model"
)

// SessionIndex is one parsed sessions-index.json plus its location.
type SessionIndex struct {
	Path    string
	Entries []model.SessionIndexEntry
}

// ScanSessionIndexes reads every project's sessions-index.json under
// claudeDir. Index files are visited in sorted path order so that
// tie-breaks between entries with equal recorded mtimes are
// reproducible. Unreadable or malformed index files are skipped.
func ScanSessionIndexes(claudeDir string) []SessionIndex {
	pattern := filepath.Join(claudeDir, "projects", "*", "sessions-index.json")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	sort.Strings(paths)

	var indexes []SessionIndex
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}

		var idx struct {
			Entries []model.SessionIndexEntry `json:"entries"`
		}
		if err := json.Unmarshal(data, &idx); err != nil {
			continue
		}

		indexes = append(indexes, SessionIndex{Path: p, Entries: idx.Entries})
	}
	return indexes
}
