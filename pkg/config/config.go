package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xhad/brief/internal/models"
)

type Config struct {
	LLM struct {
		BaseURL     string  `yaml:"base_url"`
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
		RateLimit   float64 `yaml:"rate_limit"`
	} `yaml:"llm"`

	Summarizer struct {
		MaxChars            int                `yaml:"max_chars"`
		SingleShotThreshold int                `yaml:"single_shot_threshold"`
		ChunkSize           int                `yaml:"chunk_size"`
		ChunkOverlap        int                `yaml:"chunk_overlap"`
		Caps                models.SectionCaps `yaml:"caps"`
	} `yaml:"summarizer"`

	Server struct {
		Addr           string `yaml:"addr"`
		MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	} `yaml:"server"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/brief/config.yaml"),
			"/etc/brief/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.LLM.BaseURL == "" {
		config.LLM.BaseURL = "http://localhost:11434"
	}
	if config.LLM.Provider == "" {
		config.LLM.Provider = "ollama"
	}
	if config.LLM.Model == "" {
		config.LLM.Model = "llama3"
	}
	if config.LLM.MaxTokens == 0 {
		config.LLM.MaxTokens = 1024
	}
	if config.LLM.Temperature == 0 {
		config.LLM.Temperature = 0.1
	}
	if config.LLM.RateLimit == 0 {
		config.LLM.RateLimit = 2.0
	}

	if config.Summarizer.MaxChars == 0 {
		config.Summarizer.MaxChars = 400000
	}
	if config.Summarizer.SingleShotThreshold == 0 {
		config.Summarizer.SingleShotThreshold = 6000
	}
	if config.Summarizer.ChunkSize == 0 {
		config.Summarizer.ChunkSize = 4000
	}
	if config.Summarizer.ChunkOverlap == 0 {
		config.Summarizer.ChunkOverlap = 200
	}
	if config.Summarizer.Caps == (models.SectionCaps{}) {
		config.Summarizer.Caps = models.DefaultCaps()
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Server.MaxUploadBytes == 0 {
		config.Server.MaxUploadBytes = 10 << 20
	}
}

func mergeWithEnv(config *Config) {
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if addr := os.Getenv("BRIEF_ADDR"); addr != "" {
		config.Server.Addr = addr
	}
}
