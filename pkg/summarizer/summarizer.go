package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/xhad/brief/internal/models"
	"github.com/xhad/brief/internal/types"
	"github.com/xhad/brief/pkg/chunker"
	"github.com/xhad/brief/pkg/summary"
)

// EmptyInputError reports text that is empty or whitespace-only. The HTTP
// layer should reject such uploads before the core runs, but the core guards
// it regardless.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "document text is empty"
}

type Config struct {
	SingleShotThreshold int
	ChunkSize           int
	ChunkOverlap        int
	Caps                models.SectionCaps
	OnProgress          func(completed, total int)
}

// Summarizer turns pre-extracted document text into a four-section Markdown
// summary. Short documents are summarized in a single generator call; longer
// ones are chunked, summarized per chunk, then merged, deduplicated and
// capped. Any generator or validation failure aborts the whole request.
type Summarizer struct {
	config    Config
	generator types.Generator
	chunker   chunker.Chunker
}

func NewWithConfig(generator types.Generator, config Config) *Summarizer {
	if config.SingleShotThreshold == 0 {
		config.SingleShotThreshold = 6000
	}
	if config.ChunkSize == 0 {
		config.ChunkSize = 4000
	}
	if config.ChunkOverlap == 0 {
		config.ChunkOverlap = 200
	}
	if config.Caps == (models.SectionCaps{}) {
		config.Caps = models.DefaultCaps()
	}

	return &Summarizer{
		config:    config,
		generator: generator,
		chunker: chunker.NewWithConfig(chunker.ChunkerConfig{
			ChunkSize:    config.ChunkSize,
			ChunkOverlap: config.ChunkOverlap,
		}),
	}
}

// Summarize runs the full pipeline and returns the rendered Markdown.
func (s *Summarizer) Summarize(ctx context.Context, text string, filename string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", EmptyInputError{}
	}

	var merged models.Summary
	var err error
	if len(text) <= s.config.SingleShotThreshold {
		merged, err = s.singleShot(ctx, text)
	} else {
		merged, err = s.mapReduce(ctx, text)
	}
	if err != nil {
		return "", err
	}

	merged = s.applyCaps(merged)

	return summary.RenderMarkdown(merged, filename), nil
}

func (s *Summarizer) singleShot(ctx context.Context, text string) (models.Summary, error) {
	s.progress(0, 1)

	raw, err := s.generator.Generate(ctx, singleShotPrompt, text)
	if err != nil {
		return models.Summary{}, err
	}

	validated, err := summary.Validate(raw)
	if err != nil {
		return models.Summary{}, err
	}

	s.progress(1, 1)
	return validated, nil
}

// mapReduce summarizes each chunk sequentially, then merges the partial
// summaries per section. One outstanding generator call at a time keeps the
// merge order deterministic and bounds load on the remote capability. A
// single chunk failure fails the request; dropping chunks would yield an
// incomplete but plausible-looking summary.
func (s *Summarizer) mapReduce(ctx context.Context, text string) (models.Summary, error) {
	chunks := s.chunker.Split(text)
	s.progress(0, len(chunks))

	partials := make([]models.Summary, 0, len(chunks))
	for _, chunk := range chunks {
		raw, err := s.generator.Generate(ctx, chunkPrompt, chunk.Content)
		if err != nil {
			return models.Summary{}, fmt.Errorf("chunk %d/%d: %w", chunk.Index+1, len(chunks), err)
		}

		partial, err := summary.Validate(raw)
		if err != nil {
			return models.Summary{}, fmt.Errorf("chunk %d/%d: %w", chunk.Index+1, len(chunks), err)
		}

		partials = append(partials, partial)
		s.progress(chunk.Index+1, len(chunks))
	}

	return merge(partials), nil
}

// merge flattens the partial summaries section by section in chunk order and
// collapses near-duplicate lines.
func merge(partials []models.Summary) models.Summary {
	merged := models.NewSummary()

	var exec, insights, risks, actions []string
	for _, partial := range partials {
		exec = append(exec, partial.ExecutiveSummary...)
		insights = append(insights, partial.KeyInsights...)
		risks = append(risks, partial.Risks...)
		actions = append(actions, partial.ActionItems...)
	}

	merged.ExecutiveSummary = summary.Dedupe(exec)
	merged.KeyInsights = summary.Dedupe(insights)
	merged.Risks = summary.Dedupe(risks)
	merged.ActionItems = summary.Dedupe(actions)

	return merged
}

func (s *Summarizer) applyCaps(m models.Summary) models.Summary {
	m.ExecutiveSummary = summary.Cap(m.ExecutiveSummary, s.config.Caps.ExecutiveSummary)
	m.KeyInsights = summary.Cap(m.KeyInsights, s.config.Caps.KeyInsights)
	m.Risks = summary.Cap(m.Risks, s.config.Caps.Risks)
	m.ActionItems = summary.Cap(m.ActionItems, s.config.Caps.ActionItems)
	return m
}

func (s *Summarizer) progress(completed, total int) {
	if s.config.OnProgress != nil {
		s.config.OnProgress(completed, total)
	}
}
