package common

import (
	"os"
	"strconv"
	"time"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// Config holds all application configuration
type Config struct {
	Layout   LayoutConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
	Output   OutputConfig
}

// LayoutConfig holds document-layout-analysis service configuration
type LayoutConfig struct {
	Endpoint     string
	APIKey       string
	Timeout      time.Duration
	PollInterval time.Duration
}

// LLMConfig holds text-completion service configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds extraction pipeline tuning knobs
type PipelineConfig struct {
	BatchSize      int
	Workers        int
	ProcessTimeout time.Duration
}

// OutputConfig holds result persistence configuration
type OutputConfig struct {
	Dir       string
	Format    string // constants.OutputFormatMulti | constants.OutputFormatSingle
	JobDBPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Endpoint:     getEnv("DOCUMENTINTELLIGENCE_ENDPOINT", ""),
			APIKey:       getEnv("DOCUMENTINTELLIGENCE_API_KEY", ""),
			Timeout:      getEnvAsDuration("DOCUMENTINTELLIGENCE_TIMEOUT", 5*time.Minute),
			PollInterval: getEnvAsDuration("DOCUMENTINTELLIGENCE_POLL_INTERVAL", 2*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			BatchSize:      getEnvAsInt("BATCH_SIZE", 5),
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			ProcessTimeout: getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 10*time.Minute),
		},
		Output: OutputConfig{
			Dir:       getEnv("OUTPUT_DIR", "./output"),
			Format:    getEnv("OUTPUT_FORMAT", constants.OutputFormatMulti),
			JobDBPath: getEnv("JOB_DB_PATH", "./jobs.db"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Layout.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "DOCUMENTINTELLIGENCE_ENDPOINT is required", ErrInvalidInput)
	}
	if c.Layout.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "DOCUMENTINTELLIGENCE_API_KEY is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Output.Format != constants.OutputFormatMulti && c.Output.Format != constants.OutputFormatSingle {
		return NewAppError("CONFIG_ERROR", "OUTPUT_FORMAT must be multi or single", ErrInvalidInput)
	}
	return nil
}
