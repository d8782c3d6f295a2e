package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"golang.org/x/time/rate"
)

// GeneratorConfig represents the configuration for the structured generator.
type GeneratorConfig struct {
	Provider    string // "ollama" or "openai"
	BaseURL     string // Ollama server URL
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float64
	RateLimit   float64 // outbound calls per second
}

// Generator wraps an LLM behind a structured-output contract: one outbound
// call per Generate, a low-temperature JSON-oriented request, and tolerant
// parsing of the response into a JSON object.
type Generator struct {
	config  GeneratorConfig
	model   llms.Model
	limiter *rate.Limiter
}

// NewWithConfig creates a Generator backed by the configured provider.
func NewWithConfig(config GeneratorConfig) (*Generator, error) {
	applyDefaults(&config)

	var model llms.Model
	var err error

	switch config.Provider {
	case "ollama":
		model, err = ollama.New(
			ollama.WithModel(config.Model),
			ollama.WithServerURL(config.BaseURL))
	case "openai":
		opts := []openai.Option{openai.WithModel(config.Model)}
		if config.APIKey != "" {
			opts = append(opts, openai.WithToken(config.APIKey))
		}
		model, err = openai.New(opts...)
	default:
		err = fmt.Errorf("unknown provider: %s", config.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	return NewWithModel(model, config), nil
}

// NewWithModel wraps an already constructed model. Used by tests and by
// callers that manage their own provider setup.
func NewWithModel(model llms.Model, config GeneratorConfig) *Generator {
	applyDefaults(&config)

	return &Generator{
		config:  config,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

func applyDefaults(config *GeneratorConfig) {
	if config.Provider == "" {
		config.Provider = "ollama"
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434"
	}
	if config.Model == "" {
		config.Model = "llama3"
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 1024
	}
	if config.Temperature == 0 {
		config.Temperature = 0.1
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2.0
	}
}

// Generate issues exactly one completion call and parses the textual payload
// as a JSON object. A payload that fails strict parsing gets one recovery
// pass stripping Markdown code fences; if that also fails the result is a
// GenerationParseError. The remote call is never retried here.
func (g *Generator) Generate(ctx context.Context, system string, user string) (map[string]interface{}, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, GenerationCallError{Err: err}
	}

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, user),
	}

	resp, err := g.model.GenerateContent(ctx, content,
		llms.WithTemperature(g.config.Temperature),
		llms.WithMaxTokens(g.config.MaxTokens),
		llms.WithJSONMode())
	if err != nil {
		return nil, GenerationCallError{Err: err}
	}

	payload := "{}"
	if resp != nil && len(resp.Choices) > 0 && resp.Choices[0].Content != "" {
		payload = resp.Choices[0].Content
	}

	return parseObject(payload)
}

func parseObject(payload string) (map[string]interface{}, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &parsed); err == nil {
		return parsed, nil
	}

	stripped := stripFences(payload)
	if err := json.Unmarshal([]byte(stripped), &parsed); err != nil {
		return nil, GenerationParseError{Output: payload, Err: err}
	}
	return parsed, nil
}

// stripFences removes a Markdown code-fence wrapper, with or without a
// "json" language tag, around the payload.
func stripFences(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimPrefix(trimmed, "json")
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")

	return strings.TrimSpace(trimmed)
}
