package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEventLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSessionFile(t *testing.T) {
	path := writeEventLog(t,
		`{"type": "user", "message": {"role": "user", "content": "hello"}}`,
		`{"type": "assistant", "requestId": "req_1", "message": {"role": "assistant", "usage": {"input_tokens": 10, "output_tokens": 5}}}`,
		`{"type": "summary", "summary": "ignored"}`,
		``,
	)

	var events []SessionEvent
	bad := ParseSessionFile(path, func(ev SessionEvent) {
		events = append(events, ev)
	})

	if bad != 0 {
		t.Errorf("badLines = %d, want 0", bad)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (summary and blank lines skipped)", len(events))
	}
	if events[0].Type != "user" || events[1].Type != "assistant" {
		t.Errorf("unexpected event types: %q, %q", events[0].Type, events[1].Type)
	}
	if events[1].Message.Usage.InputTokens != 10 {
		t.Errorf("input tokens = %d, want 10", events[1].Message.Usage.InputTokens)
	}
}

func TestParseSessionFileMalformedLines(t *testing.T) {
	path := writeEventLog(t,
		`{"type": "user", "message": {"role": "user", "content": "one"}}`,
		`this is not json`,
		`{"type": "user", "message": {"role": "user", "content": "two"}}`,
		`{"broken": `,
	)

	var count int
	bad := ParseSessionFile(path, func(SessionEvent) { count++ })

	if bad != 2 {
		t.Errorf("badLines = %d, want 2", bad)
	}
	if count != 2 {
		t.Errorf("events delivered = %d, want 2", count)
	}
}

func TestParseSessionFileMissing(t *testing.T) {
	bad := ParseSessionFile(filepath.Join(t.TempDir(), "nope.jsonl"), func(SessionEvent) {
		t.Fatal("no events expected for a missing file")
	})
	if bad != 0 {
		t.Errorf("badLines = %d, want 0", bad)
	}
}

func TestContentString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain string", `"fix the bug"`, "fix the bug"},
		{"structured array", `[{"type": "tool_result", "content": "ok"}]`, ""},
		{"object", `{"text": "hi"}`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &SessionMessage{Content: []byte(tt.content)}
			if got := m.ContentString(); got != tt.want {
				t.Errorf("ContentString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentStringNil(t *testing.T) {
	var m *SessionMessage
	if got := m.ContentString(); got != "" {
		t.Errorf("nil message ContentString() = %q, want empty", got)
	}
}
