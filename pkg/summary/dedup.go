package summary

import (
	"strings"
)

// Dedupe normalizes a sequence of bullet lines and drops near-duplicates.
// Each line has surrounding whitespace trimmed and internal whitespace runs
// (including newlines) collapsed to single spaces; lines that normalize to
// empty are discarded. Duplicates are detected by the lowercased normalized
// text, keeping the first occurrence in order. Dedupe is idempotent:
// Dedupe(Dedupe(lines)) == Dedupe(lines).
func Dedupe(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		normalized := strings.Join(strings.Fields(line), " ")
		if normalized == "" {
			continue
		}

		fingerprint := strings.ToLower(normalized)
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true
		out = append(out, normalized)
	}

	return out
}

// Cap truncates lines to at most limit entries, keeping the leading ones.
func Cap(lines []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if len(lines) <= limit {
		return lines
	}
	return lines[:limit]
}
