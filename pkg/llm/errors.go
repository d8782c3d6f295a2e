package llm

import (
	"fmt"
)

// GenerationCallError wraps a failure of the remote completion call itself.
type GenerationCallError struct {
	Err error
}

func (e GenerationCallError) Error() string {
	return fmt.Sprintf("generator call failed: %v", e.Err)
}

func (e GenerationCallError) Unwrap() error {
	return e.Err
}

// GenerationParseError reports generator output that is not valid JSON even
// after stripping Markdown code fences.
type GenerationParseError struct {
	Output string
	Err    error
}

func (e GenerationParseError) Error() string {
	return fmt.Sprintf("generator returned invalid JSON: %v", e.Err)
}

func (e GenerationParseError) Unwrap() error {
	return e.Err
}
