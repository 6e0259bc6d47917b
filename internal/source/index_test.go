package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIndex(t *testing.T, claudeDir, project, content string) {
	t.Helper()
	dir := filepath.Join(claudeDir, "projects", project)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sessions-index.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestScanSessionIndexesSortedOrder(t *testing.T) {
	claudeDir := t.TempDir()
	writeIndex(t, claudeDir, "zeta", `{"entries": [{"sessionId": "z1"}]}`)
	writeIndex(t, claudeDir, "alpha", `{"entries": [{"sessionId": "a1"}]}`)
	writeIndex(t, claudeDir, "mid", `{"entries": [{"sessionId": "m1"}]}`)

	indexes := ScanSessionIndexes(claudeDir)
	if len(indexes) != 3 {
		t.Fatalf("got %d indexes, want 3", len(indexes))
	}

	wantOrder := []string{"a1", "m1", "z1"}
	for i, want := range wantOrder {
		if got := indexes[i].Entries[0].SessionID; got != want {
			t.Errorf("index %d: sessionId = %q, want %q", i, got, want)
		}
	}
}

func TestScanSessionIndexesSkipsMalformed(t *testing.T) {
	claudeDir := t.TempDir()
	writeIndex(t, claudeDir, "good", `{"entries": [{"sessionId": "ok"}]}`)
	writeIndex(t, claudeDir, "bad", `{{{`)

	indexes := ScanSessionIndexes(claudeDir)
	if len(indexes) != 1 {
		t.Fatalf("got %d indexes, want 1", len(indexes))
	}
	if indexes[0].Entries[0].SessionID != "ok" {
		t.Errorf("surviving entry = %q, want ok", indexes[0].Entries[0].SessionID)
	}
}

func TestScanSessionIndexesEmptyDir(t *testing.T) {
	if got := ScanSessionIndexes(t.TempDir()); len(got) != 0 {
		t.Errorf("empty dir should yield no indexes, got %d", len(got))
	}
}
