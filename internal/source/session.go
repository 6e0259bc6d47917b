package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
)

// SessionEvent is one line of a session's JSONL event log.
type SessionEvent struct {
	Type      string          `json:"type"`
	IsMeta    bool            `json:"isMeta"`
	RequestID string          `json:"requestId"`
	Message   *SessionMessage `json:"message"`
}

// SessionMessage is the message envelope carried by user and assistant
// events. Content is kept raw because user content is either a plain
// string (a human prompt) or a structured array (tool results).
type SessionMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
	Usage   *SessionUsage   `json:"usage"`
}

// SessionUsage holds token counts from the API response.
type SessionUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
}

// ContentString returns the message content when it is a plain JSON
// string, or "" when it is absent or structured.
func (m *SessionMessage) ContentString() string {
	if m == nil || len(m.Content) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Content, &s); err != nil {
		return ""
	}
	return s
}

// ParseSessionFile streams the JSONL event log at path, invoking fn for
// each well-formed user or assistant event. Malformed lines are counted
// and skipped individually so one corrupt line cannot hide the rest of
// the file. A missing or unreadable file yields zero events.
func ParseSessionFile(path string, fn func(SessionEvent)) (badLines int) {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev SessionEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			badLines++
			continue
		}

		switch ev.Type {
		case "user", "assistant":
			fn(ev)
		}
	}
	return badLines
}
