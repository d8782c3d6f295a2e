package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/xhad/brief/internal/models"
)

type ChunkerConfig struct {
	ChunkSize    int
	ChunkOverlap int
}

type Chunker struct {
	config ChunkerConfig
}

func NewWithConfig(config ChunkerConfig) Chunker {
	if config.ChunkSize == 0 {
		config.ChunkSize = 4000
	}
	if config.ChunkOverlap == 0 {
		config.ChunkOverlap = 200
	}
	if config.ChunkOverlap >= config.ChunkSize {
		config.ChunkOverlap = config.ChunkSize / 4
	}

	return Chunker{
		config: config,
	}
}

// Split cuts text into ordered chunks of at most ChunkSize bytes. Consecutive
// chunks share ChunkOverlap bytes, recorded on each chunk, so that
// Reconstruct(Split(text)) == text. Cut points prefer a paragraph break, then
// a sentence end, then a word boundary; only when none exists within the
// budget does a chunk end mid-word.
func (c *Chunker) Split(text string) []models.Chunk {
	if text == "" {
		return nil
	}

	size := c.config.ChunkSize
	overlap := c.config.ChunkOverlap

	var chunks []models.Chunk

	start := 0
	prevOverlap := 0
	for start < len(text) {
		limit := start + size
		if limit >= len(text) {
			chunks = append(chunks, models.Chunk{
				Index:   len(chunks),
				Content: text[start:],
				Overlap: prevOverlap,
			})
			break
		}

		end := breakPoint(text, start, limit)

		// A cut inside the overlap region would make the next chunk start at
		// or before this one; fall back to the full budget.
		if end-overlap <= start {
			end = runeBoundary(text, start, limit)
			if end-overlap <= start {
				end = limit
			}
		}

		chunks = append(chunks, models.Chunk{
			Index:   len(chunks),
			Content: text[start:end],
			Overlap: prevOverlap,
		})

		start = end - overlap
		prevOverlap = overlap
	}

	return chunks
}

// Reconstruct rebuilds the original text by dropping each chunk's leading
// overlap and concatenating the remainders.
func Reconstruct(chunks []models.Chunk) string {
	var b strings.Builder
	for _, chunk := range chunks {
		b.WriteString(chunk.Content[chunk.Overlap:])
	}
	return b.String()
}

var sentenceEnders = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// breakPoint picks the best cut position in (start, limit], preferring
// paragraph breaks, then sentence ends, then word boundaries.
func breakPoint(text string, start, limit int) int {
	window := text[start:limit]

	if idx := strings.LastIndex(window, "\n\n"); idx >= 0 {
		return start + idx + 2
	}

	best := -1
	for _, ender := range sentenceEnders {
		if idx := strings.LastIndex(window, ender); idx >= 0 && idx+len(ender) > best {
			best = idx + len(ender)
		}
	}
	if best > 0 {
		return start + best
	}

	if idx := strings.LastIndexAny(window, " \n\t"); idx > 0 {
		return start + idx + 1
	}

	return runeBoundary(text, start, limit)
}

// runeBoundary backs limit up to the start of a UTF-8 rune so a raw cut
// never splits a character.
func runeBoundary(text string, start, limit int) int {
	end := limit
	for end > start && !utf8.RuneStart(text[end]) {
		end--
	}
	if end == start {
		return limit
	}
	return end
}
