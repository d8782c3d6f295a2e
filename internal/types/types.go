package types

import (
	"context"
)

// Core interfaces

// Generator is the opaque structured-completion capability. Given a system
// instruction and a user instruction it returns the model output parsed as a
// JSON value. Implementations make exactly one outbound call per invocation.
type Generator interface {
	Generate(ctx context.Context, system string, user string) (map[string]interface{}, error)
}

// Extractor turns an uploaded file into plain text.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// Summarizer produces a Markdown summary for pre-extracted plain text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, filename string) (string, error)
}
