package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate LLM config
	if c.LLM.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "llm.base_url",
			Message: "base URL is required",
		})
	} else if _, err := url.Parse(c.LLM.BaseURL); err != nil {
		errors = append(errors, ValidationError{
			Field:   "llm.base_url",
			Message: "invalid base URL",
		})
	}

	if c.LLM.Provider != "ollama" && c.LLM.Provider != "openai" {
		errors = append(errors, ValidationError{
			Field:   "llm.provider",
			Message: fmt.Sprintf("unknown provider: %s", c.LLM.Provider),
		})
	}

	if c.LLM.MaxTokens < 1 || c.LLM.MaxTokens > 4096 {
		errors = append(errors, ValidationError{
			Field:   "llm.max_tokens",
			Message: "max_tokens must be between 1 and 4096",
		})
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errors = append(errors, ValidationError{
			Field:   "llm.temperature",
			Message: "temperature must be between 0 and 2",
		})
	}

	if c.LLM.RateLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "llm.rate_limit",
			Message: "rate_limit must be positive",
		})
	}

	// Validate Summarizer config
	if c.Summarizer.SingleShotThreshold < 1 {
		errors = append(errors, ValidationError{
			Field:   "summarizer.single_shot_threshold",
			Message: "single_shot_threshold must be positive",
		})
	}

	if c.Summarizer.MaxChars < c.Summarizer.SingleShotThreshold {
		errors = append(errors, ValidationError{
			Field:   "summarizer.max_chars",
			Message: "max_chars must be at least single_shot_threshold",
		})
	}

	if c.Summarizer.ChunkSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "summarizer.chunk_size",
			Message: "chunk_size must be positive",
		})
	}

	if c.Summarizer.ChunkOverlap < 0 || c.Summarizer.ChunkOverlap >= c.Summarizer.ChunkSize {
		errors = append(errors, ValidationError{
			Field:   "summarizer.chunk_overlap",
			Message: "chunk_overlap must be non-negative and less than chunk_size",
		})
	}

	caps := []struct {
		field string
		value int
	}{
		{"summarizer.caps.executive_summary", c.Summarizer.Caps.ExecutiveSummary},
		{"summarizer.caps.key_insights", c.Summarizer.Caps.KeyInsights},
		{"summarizer.caps.risks", c.Summarizer.Caps.Risks},
		{"summarizer.caps.action_items", c.Summarizer.Caps.ActionItems},
	}
	for _, entry := range caps {
		if entry.value < 1 {
			errors = append(errors, ValidationError{
				Field:   entry.field,
				Message: "section cap must be positive",
			})
		}
	}

	// Validate Server config
	if c.Server.MaxUploadBytes < 1 {
		errors = append(errors, ValidationError{
			Field:   "server.max_upload_bytes",
			Message: "max_upload_bytes must be positive",
		})
	}

	return errors
}
