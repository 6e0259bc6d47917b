package source

import "testing"

func TestFriendlyModelName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"claude-opus-4-5-20260115", "Opus 4.5"},
		{"claude-sonnet-4-5-20250929", "Sonnet 4.5"},
		{"claude-haiku-4-5-20251001", "Haiku 4.5"},
		{"some-future-model", "some-future-model"},
	}

	for _, tt := range tests {
		if got := FriendlyModelName(tt.id); got != tt.want {
			t.Errorf("FriendlyModelName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
