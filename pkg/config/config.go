package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Pipeline configuration
	Pipeline PipelineConfig `mapstructure:"pipeline"`

	// Synthetic corpus configuration
	Synth SynthConfig `mapstructure:"synth"`

	// LLM configuration
	LLM LLMConfig `mapstructure:"llm"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PipelineConfig holds the directories the pipeline reads and writes
type PipelineConfig struct {
	DataDir   string `mapstructure:"data_dir"`
	OutputDir string `mapstructure:"output_dir"`
}

// SynthConfig controls the synthetic corpus generator
type SynthConfig struct {
	NumPeople int   `mapstructure:"num_people"`
	NumDocs   int   `mapstructure:"num_docs"`
	Seed      int64 `mapstructure:"seed"`
}

// LLMConfig holds LLM configuration
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"` // openai or an openai-compatible endpoint
	Model       string  `mapstructure:"model"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Pipeline defaults
	viper.SetDefault("pipeline.data_dir", filepath.Join("data", "synthetic_texts"))
	viper.SetDefault("pipeline.output_dir", "outputs")

	// Synth defaults
	viper.SetDefault("synth.num_people", 10)
	viper.SetDefault("synth.num_docs", 10)
	viper.SetDefault("synth.seed", 42)

	// LLM defaults
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.max_tokens", 2048)
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if model := os.Getenv("BIOKG_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if dir := os.Getenv("BIOKG_DATA_DIR"); dir != "" {
		config.Pipeline.DataDir = dir
	}
	if dir := os.Getenv("BIOKG_OUTPUT_DIR"); dir != "" {
		config.Pipeline.OutputDir = dir
	}
}
