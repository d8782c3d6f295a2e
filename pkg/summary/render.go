package summary

import (
	"strings"

	"github.com/xhad/brief/internal/models"
)

// RenderMarkdown projects a Summary onto the fixed four-section Markdown
// layout. The same Summary and filename always produce the identical string.
// Bullet text is emitted as-is; it is expected to be plain prose.
func RenderMarkdown(s models.Summary, filename string) string {
	var b strings.Builder

	writeSection(&b, "Executive Summary", s.ExecutiveSummary)
	writeSection(&b, "Key Insights", s.KeyInsights)
	writeSection(&b, "Risks", s.Risks)
	writeSection(&b, "Action Items", s.ActionItems)

	b.WriteString("---\n")
	b.WriteString("*Summary generated from `" + filename + "`*\n")

	return b.String()
}

func writeSection(b *strings.Builder, heading string, lines []string) {
	b.WriteString("## " + heading + "\n")
	if len(lines) == 0 {
		b.WriteString("- (none)\n")
	} else {
		for _, line := range lines {
			b.WriteString("- " + line + "\n")
		}
	}
	b.WriteString("\n")
}
