package summary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xhad/brief/internal/models"
	"github.com/xhad/brief/pkg/summary"
)

func TestRenderMarkdown(t *testing.T) {
	s := models.Summary{
		ExecutiveSummary: []string{"A short report about widgets."},
		KeyInsights:      []string{"Widgets are popular.", "Demand is growing."},
		Risks:            []string{},
		ActionItems:      []string{"Order more widgets."},
	}

	got := summary.RenderMarkdown(s, "widgets.txt")

	want := "## Executive Summary\n" +
		"- A short report about widgets.\n" +
		"\n" +
		"## Key Insights\n" +
		"- Widgets are popular.\n" +
		"- Demand is growing.\n" +
		"\n" +
		"## Risks\n" +
		"- (none)\n" +
		"\n" +
		"## Action Items\n" +
		"- Order more widgets.\n" +
		"\n" +
		"---\n" +
		"*Summary generated from `widgets.txt`*\n"

	assert.Equal(t, want, got)
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	s := models.NewSummary()
	s.Risks = []string{"one", "two"}

	first := summary.RenderMarkdown(s, "doc.md")
	second := summary.RenderMarkdown(s, "doc.md")

	assert.Equal(t, first, second)
}

func TestRenderMarkdown_EmptySummaryUsesPlaceholders(t *testing.T) {
	got := summary.RenderMarkdown(models.NewSummary(), "empty.txt")

	assert.Equal(t, 4, strings.Count(got, "- (none)\n"))
}
