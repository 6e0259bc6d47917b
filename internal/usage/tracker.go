package usage

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/theirongolddev/cwatch/internal/metrics"
	"github.com/theirongolddev/cwatch/internal/model"
	"github.com/theirongolddev/cwatch/internal/source"
)

// statsFileName is the stats cache document Claude Code maintains in
// its data directory.
const statsFileName = "stats-cache.json"

// Tracker serves weekly and session statistics under a staleness-aware
// cache. Each external read is preceded by a cheap mtime check and the
// last-computed value is reused only while its source is unchanged.
// The mutex makes mtime checks and value updates atomic to readers on
// other goroutines (the watcher HTTP handlers).
type Tracker struct {
	claudeDir string
	statsPath string
	now       func() time.Time

	mu sync.Mutex

	statsMtime time.Time
	weekly     *model.WeeklyStats

	sessionPath  string
	sessionMtime time.Time
	session      *model.SessionStats

	// parse counters for cache-behavior tests
	statsParses   int64
	sessionParses int64
}

// NewTracker returns a tracker reading from the given Claude data
// directory.
func NewTracker(claudeDir string) *Tracker {
	return &Tracker{
		claudeDir: claudeDir,
		statsPath: filepath.Join(claudeDir, statsFileName),
		now:       time.Now,
	}
}

// WeeklyStats returns usage aggregates for the current Monday-Sunday
// week. The parsed result is reused until the stats document's mtime
// changes. A missing or unstattable document yields the zero aggregate
// without touching the cache.
func (t *Tracker) WeeklyStats() model.WeeklyStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, err := os.Stat(t.statsPath)
	if err != nil {
		return model.EmptyWeeklyStats()
	}
	mtime := info.ModTime()

	if t.weekly != nil && mtime.Equal(t.statsMtime) {
		metrics.CacheHits.WithLabelValues("weekly").Inc()
		return t.weekly.Clone()
	}
	metrics.CacheMisses.WithLabelValues("weekly").Inc()

	doc := source.ReadStatsDocument(t.statsPath)
	t.statsParses++

	w := weeklyFrom(doc, t.now())
	t.statsMtime = mtime
	t.weekly = &w
	return w.Clone()
}

// SessionStats returns stats for the most recently active session
// across all projects. The cached value is reused only while both the
// selected session file and its mtime are unchanged; a newly selected
// file forces a full reparse even when its own mtime did not move.
func (t *Tracker) SessionStats() model.SessionStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, path, ok := findLatestSession(t.claudeDir)
	if !ok {
		return model.EmptySessionStats()
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.EmptySessionStats()
	}
	mtime := info.ModTime()

	if t.session != nil && path == t.sessionPath && mtime.Equal(t.sessionMtime) {
		metrics.CacheHits.WithLabelValues("session").Inc()
		return *t.session
	}
	metrics.CacheMisses.WithLabelValues("session").Inc()

	s := sessionFrom(entry, path)
	t.sessionParses++

	t.sessionPath = path
	t.sessionMtime = mtime
	t.session = &s
	return s
}

// Invalidate force-expires both cache slots so the next read reparses
// from disk regardless of file timestamps.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.statsMtime = time.Time{}
	t.weekly = nil

	t.sessionPath = ""
	t.sessionMtime = time.Time{}
	t.session = nil
}

// ClaudeDir reports the data directory this tracker reads from.
func (t *Tracker) ClaudeDir() string { return t.claudeDir }
