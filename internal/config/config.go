package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM        LLMConfig        `yaml:"llm"`
	Credential CredentialConfig `yaml:"credential"`
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watcher    WatcherConfig    `yaml:"watcher"`
	Output     OutputConfig     `yaml:"output"`
}

type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	// Command is the argv of the command provider; "{model}" is substituted.
	Command []string `yaml:"command"`
	// Prompts overrides the built-in templates by name (plain, context, questions).
	Prompts map[string]string `yaml:"prompts"`
}

type CredentialConfig struct {
	StorePath  string        `yaml:"store_path"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	EnvVar     string        `yaml:"env_var"`
	DotEnv     []string      `yaml:"dotenv"`
	Prefix     string        `yaml:"prefix"`
	MinLength  int           `yaml:"min_length"`
}

type SegmenterConfig struct {
	MaxSize           int    `yaml:"max_size"`
	Overlap           int    `yaml:"overlap"`
	Strategy          string `yaml:"strategy"`
	Language          string `yaml:"language"`
	// ContinuityMarkers is on unless set to false.
	ContinuityMarkers *bool  `yaml:"continuity_markers"`
	ContinuationLabel string `yaml:"continuation_label"`
}

type PipelineConfig struct {
	ContextPolicy string `yaml:"context_policy"`
	WindowSize    int    `yaml:"window_size"`
	Separator     string `yaml:"separator"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type WatcherConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
	HTML bool `yaml:"html"`
}

// Default returns a validated configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	if c.LLM.Provider == "" {
		c.LLM.Provider = "anthropic"
	}
	switch c.LLM.Provider {
	case "anthropic", "openai", "gemini":
	case "command":
		if len(c.LLM.Command) == 0 {
			return fmt.Errorf("llm.command is required for the command provider")
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel(c.LLM.Provider)
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 8192
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 5 * time.Minute
	}

	if c.Credential.StorePath == "" {
		c.Credential.StorePath = "~/.config/transcript-flow/credentials.yaml"
	}
	c.Credential.StorePath = expandHome(c.Credential.StorePath)
	if c.Credential.SessionTTL == 0 {
		c.Credential.SessionTTL = 12 * time.Hour
	}
	if c.Credential.DotEnv == nil {
		c.Credential.DotEnv = []string{".env"}
	}

	if c.Segmenter.MaxSize == 0 {
		c.Segmenter.MaxSize = 3000
	}
	if c.Segmenter.MaxSize < 0 {
		return fmt.Errorf("segmenter.max_size must be positive")
	}
	if c.Segmenter.Overlap < 0 || c.Segmenter.Overlap >= c.Segmenter.MaxSize {
		return fmt.Errorf("segmenter.overlap must be in [0, %d)", c.Segmenter.MaxSize)
	}
	if c.Segmenter.Strategy == "" {
		c.Segmenter.Strategy = "discourse"
	}
	if c.Segmenter.Strategy != "discourse" && c.Segmenter.Strategy != "paragraph" {
		return fmt.Errorf("segmenter.strategy %q must be discourse or paragraph", c.Segmenter.Strategy)
	}
	if c.Segmenter.Language == "" {
		c.Segmenter.Language = "ja"
	}
	if c.Segmenter.ContinuityMarkers == nil {
		on := true
		c.Segmenter.ContinuityMarkers = &on
	}

	if c.Pipeline.ContextPolicy == "" {
		c.Pipeline.ContextPolicy = "sliding"
	}
	if c.Pipeline.ContextPolicy != "sliding" && c.Pipeline.ContextPolicy != "cumulative" {
		return fmt.Errorf("pipeline.context_policy %q must be sliding or cumulative", c.Pipeline.ContextPolicy)
	}
	if c.Pipeline.WindowSize == 0 {
		c.Pipeline.WindowSize = 3
	}
	if c.Pipeline.Separator == "" {
		c.Pipeline.Separator = "rule"
	}
	if c.Pipeline.Separator != "rule" && c.Pipeline.Separator != "newline" {
		return fmt.Errorf("pipeline.separator %q must be rule or newline", c.Pipeline.Separator)
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
	if c.Watcher.SettleDelay == 0 {
		c.Watcher.SettleDelay = 500 * time.Millisecond
	}

	return nil
}

func defaultModel(provider string) string {
	switch provider {
	case "gemini":
		return "gemini-2.5-flash"
	case "openai":
		return "gpt-4o"
	case "command":
		return "llama3"
	default:
		return "claude-3-7-sonnet-latest"
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
