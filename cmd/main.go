package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	cfgPkg "github.com/xhad/brief/pkg/config"
	"github.com/xhad/brief/pkg/extract"
	"github.com/xhad/brief/pkg/llm"
	"github.com/xhad/brief/pkg/summarizer"
	"github.com/xhad/brief/server"
)

type flags struct {
	configPath string
	file       string
	output     string
	serve      bool

	provider  string
	baseURL   string
	model     string
	chunkSize int
	threshold int
	addr      string
}

func main() {
	f := parseFlags()

	config, err := cfgPkg.LoadConfig(f.configPath)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(config, f)

	if errs := config.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config: %v", e)
		}
		os.Exit(1)
	}

	if err := run(config, f); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "Path to config file")
	flag.StringVar(&f.file, "file", "", "Document to summarize (.txt, .md, .html)")
	flag.StringVar(&f.output, "o", "", "Write the Markdown summary to a file instead of stdout")
	flag.BoolVar(&f.serve, "serve", false, "Run the HTTP upload server")
	flag.StringVar(&f.provider, "provider", "", "LLM provider (ollama or openai)")
	flag.StringVar(&f.baseURL, "ollama-url", os.Getenv("OLLAMA_BASE_URL"), "Ollama server URL")
	flag.StringVar(&f.model, "model", "", "LLM model to use")
	flag.IntVar(&f.chunkSize, "chunk-size", 0, "Size of text chunks")
	flag.IntVar(&f.threshold, "single-shot-threshold", 0, "Document length below which one generator call is used")
	flag.StringVar(&f.addr, "addr", "", "HTTP listen address")
	flag.Parse()

	if f.file == "" && flag.NArg() > 0 {
		f.file = flag.Arg(0)
	}

	return f
}

// applyFlags lets command line flags override config file values.
func applyFlags(config *cfgPkg.Config, f flags) {
	if f.provider != "" {
		config.LLM.Provider = f.provider
	}
	if f.baseURL != "" {
		config.LLM.BaseURL = f.baseURL
	}
	if f.model != "" {
		config.LLM.Model = f.model
	}
	if f.chunkSize != 0 {
		config.Summarizer.ChunkSize = f.chunkSize
	}
	if f.threshold != 0 {
		config.Summarizer.SingleShotThreshold = f.threshold
	}
	if f.addr != "" {
		config.Server.Addr = f.addr
	}
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("chunks"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config *cfgPkg.Config, f flags) error {
	generator, err := llm.NewWithConfig(llm.GeneratorConfig{
		Provider:    config.LLM.Provider,
		BaseURL:     config.LLM.BaseURL,
		Model:       config.LLM.Model,
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		MaxTokens:   config.LLM.MaxTokens,
		Temperature: config.LLM.Temperature,
		RateLimit:   config.LLM.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %v", err)
	}

	summarizerConfig := summarizer.Config{
		SingleShotThreshold: config.Summarizer.SingleShotThreshold,
		ChunkSize:           config.Summarizer.ChunkSize,
		ChunkOverlap:        config.Summarizer.ChunkOverlap,
		Caps:                config.Summarizer.Caps,
	}

	if f.serve {
		s := server.New(server.Config{
			Addr:           config.Server.Addr,
			MaxUploadBytes: config.Server.MaxUploadBytes,
			MaxChars:       config.Summarizer.MaxChars,
		}, summarizer.NewWithConfig(generator, summarizerConfig))
		return s.Run()
	}

	if f.file == "" {
		return fmt.Errorf("no input: pass a file to summarize or -serve")
	}

	data, err := os.ReadFile(f.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", f.file, err)
	}

	filename := filepath.Base(f.file)
	text, err := extract.New().Extract(filename, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %v", err)
	}
	if len(text) > config.Summarizer.MaxChars {
		return fmt.Errorf("document exceeds %d characters", config.Summarizer.MaxChars)
	}

	var bar *progressbar.ProgressBar
	summarizerConfig.OnProgress = func(completed, total int) {
		if bar == nil {
			bar = getProgressBar(total, " Summarizing document...")
		}
		bar.Set(completed)
	}

	s := summarizer.NewWithConfig(generator, summarizerConfig)

	markdown, err := s.Summarize(context.Background(), text, filename)
	if bar != nil {
		bar.Finish()
		fmt.Print("\n")
	}
	if err != nil {
		return fmt.Errorf("summarization failed: %v", err)
	}

	if f.output != "" {
		if err := os.WriteFile(f.output, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %v", f.output, err)
		}
		color.Green("✓ Summary written to %s\n", f.output)
		return nil
	}

	fmt.Println(markdown)
	return nil
}
