package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Matcher     MatcherConfig     `yaml:"matcher"`
	Flowchart   FlowchartConfig   `yaml:"flowchart"`
	Graphviz    GraphvizConfig    `yaml:"graphviz"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type MatcherConfig struct {
	OCRWeight        float64 `yaml:"ocr_weight"`
	TranscriptWeight float64 `yaml:"transcript_weight"`
	MinScore         float64 `yaml:"min_score"`
	AllowReuse       bool    `yaml:"allow_reuse"`
}

type FlowchartConfig struct {
	MaxLabelWords  int `yaml:"max_label_words"`
	MaxSteps       int `yaml:"max_steps"`
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type GraphvizConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Matcher.OCRWeight == 0 {
		c.Matcher.OCRWeight = 0.6
	}
	if c.Matcher.TranscriptWeight == 0 {
		c.Matcher.TranscriptWeight = 0.4
	}
	if c.Matcher.MinScore == 0 {
		c.Matcher.MinScore = 0.02
	}
	if c.Flowchart.MaxLabelWords == 0 {
		c.Flowchart.MaxLabelWords = 6
	}
	if c.Flowchart.MaxSteps == 0 {
		c.Flowchart.MaxSteps = 15
	}
	if c.Flowchart.TimeoutSeconds == 0 {
		c.Flowchart.TimeoutSeconds = 60
	}
	if c.Graphviz.BinaryPath == "" {
		c.Graphviz.BinaryPath = "dot"
	}
	if c.Graphviz.Format == "" {
		c.Graphviz.Format = "png"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
