package usage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/cwatch/internal/model"
)

func writeStatsDoc(t *testing.T, claudeDir, date string, messages int) {
	t.Helper()
	doc := fmt.Sprintf(
		`{"dailyActivity": [{"date": %q, "messageCount": %d, "sessionCount": 1, "toolCallCount": 0}]}`,
		date, messages,
	)
	if err := os.WriteFile(filepath.Join(claudeDir, "stats-cache.json"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestWeeklyStatsMissingFile(t *testing.T) {
	tr := NewTracker(t.TempDir())
	w := tr.WeeklyStats()
	if w.Messages != 0 || len(w.TokensByModel) != 0 {
		t.Errorf("missing stats file should yield zero aggregate, got %+v", w)
	}
	if tr.statsParses != 0 {
		t.Errorf("statsParses = %d, want 0 (nothing to parse)", tr.statsParses)
	}
}

func TestWeeklyStatsCachedWhileUnchanged(t *testing.T) {
	claudeDir := t.TempDir()
	writeStatsDoc(t, claudeDir, "2026-09-02", 7)

	tr := NewTracker(claudeDir)
	tr.now = func() time.Time { return midweek }

	first := tr.WeeklyStats()
	if first.Messages != 7 {
		t.Fatalf("Messages = %d, want 7", first.Messages)
	}
	if tr.statsParses != 1 {
		t.Fatalf("statsParses = %d, want 1", tr.statsParses)
	}

	// Same mtime: served from cache, no reparse.
	for i := 0; i < 3; i++ {
		tr.WeeklyStats()
	}
	if tr.statsParses != 1 {
		t.Errorf("statsParses = %d after cached reads, want 1", tr.statsParses)
	}
}

func TestWeeklyStatsReparsesOnMtimeChange(t *testing.T) {
	claudeDir := t.TempDir()
	writeStatsDoc(t, claudeDir, "2026-09-02", 7)

	tr := NewTracker(claudeDir)
	tr.now = func() time.Time { return midweek }
	tr.WeeklyStats()

	writeStatsDoc(t, claudeDir, "2026-09-02", 11)
	// Force an observable mtime change regardless of filesystem
	// timestamp granularity.
	statsPath := filepath.Join(claudeDir, "stats-cache.json")
	bumped := time.Now().Add(10 * time.Second)
	if err := os.Chtimes(statsPath, bumped, bumped); err != nil {
		t.Fatal(err)
	}

	w := tr.WeeklyStats()
	if w.Messages != 11 {
		t.Errorf("Messages = %d, want 11 after rewrite", w.Messages)
	}
	if tr.statsParses != 2 {
		t.Errorf("statsParses = %d, want 2", tr.statsParses)
	}
}

func TestWeeklyStatsInvalidateForcesReparse(t *testing.T) {
	claudeDir := t.TempDir()
	writeStatsDoc(t, claudeDir, "2026-09-02", 7)

	tr := NewTracker(claudeDir)
	tr.now = func() time.Time { return midweek }
	tr.WeeklyStats()
	tr.WeeklyStats()
	if tr.statsParses != 1 {
		t.Fatalf("statsParses = %d, want 1", tr.statsParses)
	}

	tr.Invalidate()
	tr.WeeklyStats()
	if tr.statsParses != 2 {
		t.Errorf("statsParses = %d after Invalidate, want 2", tr.statsParses)
	}
}

func TestWeeklyStatsReturnsClones(t *testing.T) {
	claudeDir := t.TempDir()
	doc := `{"dailyModelTokens": [{"date": "2026-09-02", "tokensByModel": {"claude-opus-4-5-20260115": 100}}]}`
	if err := os.WriteFile(filepath.Join(claudeDir, "stats-cache.json"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	tr := NewTracker(claudeDir)
	tr.now = func() time.Time { return midweek }

	a := tr.WeeklyStats()
	a.TokensByModel["Opus 4.5"] = 999999

	b := tr.WeeklyStats()
	if b.TokensByModel["Opus 4.5"] != 100 {
		t.Errorf("caller mutation leaked into the cache: %v", b.TokensByModel)
	}
}

func TestSessionStatsNoSession(t *testing.T) {
	tr := NewTracker(t.TempDir())
	s := tr.SessionStats()
	if s.Summary != "No active session" || s.Duration != "0s" {
		t.Errorf("unexpected empty session: %+v", s)
	}
}

func TestSessionStatsCachedWhileUnchanged(t *testing.T) {
	claudeDir := t.TempDir()
	writeSession(t, claudeDir, "proj",
		model.SessionIndexEntry{SessionID: "s1", FileMtime: 100, Summary: "work"},
		userLine("hello"),
		assistantLine("req_1", 10, 5),
	)

	tr := NewTracker(claudeDir)
	first := tr.SessionStats()
	if first.Messages != 1 || first.InputTokens != 10 {
		t.Fatalf("unexpected session stats: %+v", first)
	}
	if tr.sessionParses != 1 {
		t.Fatalf("sessionParses = %d, want 1", tr.sessionParses)
	}

	for i := 0; i < 3; i++ {
		tr.SessionStats()
	}
	if tr.sessionParses != 1 {
		t.Errorf("sessionParses = %d after cached reads, want 1", tr.sessionParses)
	}
}

func TestSessionStatsReparsesWhenSelectionChanges(t *testing.T) {
	claudeDir := t.TempDir()
	writeSession(t, claudeDir, "proj-a",
		model.SessionIndexEntry{SessionID: "s1", FileMtime: 100},
		userLine("one"))

	tr := NewTracker(claudeDir)
	tr.SessionStats()
	if tr.sessionParses != 1 {
		t.Fatalf("sessionParses = %d, want 1", tr.sessionParses)
	}

	// A newer session in another project changes the selected path, so
	// the next read must reparse even though the old file's mtime is
	// untouched.
	writeSession(t, claudeDir, "proj-b",
		model.SessionIndexEntry{SessionID: "s2", FileMtime: 200},
		userLine("two"),
		userLine("three"))

	s := tr.SessionStats()
	if s.SessionID != "s2" {
		t.Errorf("SessionID = %q, want s2", s.SessionID)
	}
	if s.Messages != 2 {
		t.Errorf("Messages = %d, want 2", s.Messages)
	}
	if tr.sessionParses != 2 {
		t.Errorf("sessionParses = %d, want 2", tr.sessionParses)
	}
}
