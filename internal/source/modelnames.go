package source

import "strings"

// modelNamePatterns maps model ID substrings to short display names.
// Order matters: the first matching pattern wins. The table is
// cosmetic; IDs with no match pass through unchanged.
var modelNamePatterns = []struct {
	pattern string
	name    string
}{
	{"claude-opus-4-5", "Opus 4.5"},
	{"claude-sonnet-4-5", "Sonnet 4.5"},
	{"claude-haiku-4-5", "Haiku 4.5"},
}

// FriendlyModelName converts a model ID to its short display name.
func FriendlyModelName(modelID string) string {
	for _, m := range modelNamePatterns {
		if strings.Contains(modelID, m.pattern) {
			return m.name
		}
	}
	return modelID
}
