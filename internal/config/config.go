// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"triptalk/pkg/utils"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

type Config struct {
	Port   string
	AppEnv string

	// AIProvider selects the generator: gemini or openai.
	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// GenerationCacheTTL enables the prompt-keyed generation cache when > 0.
	GenerationCacheTTL time.Duration

	// StoreDriver selects trip persistence: file, bolt or postgres.
	StoreDriver string
	DataDir     string
	OutputDir   string
	BoltPath    string
	PostgresURL string

	// SinkURL enables the downstream relational sink when set.
	SinkURL     string
	SinkTimeout time.Duration

	CORSOrigins []string
}

// TripDataPath is the JSON document used by the file driver.
func (c Config) TripDataPath() string {
	return filepath.Join(c.DataDir, "travel_data.json")
}

// LatestPlanPath is the diagnostic copy of the last generated plan.
func (c Config) LatestPlanPath() string {
	return filepath.Join(c.OutputDir, "latest_plan.md")
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

// LoadDotEnv reads an optional .env file into the process environment.
// Variables already set are left untouched.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load reads configuration from environment variables. Every missing or
// invalid variable is reported in a single error.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		AIProvider:   strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		DataDir:      getEnv("DATA_DIR", "data"),
		OutputDir:    getEnv("OUTPUT_DIR", "outputs"),
		BoltPath:     getEnv("BOLT_PATH", filepath.Join("data", "travel_data.bolt")),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		SinkURL:      os.Getenv("SINK_URL"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var problems []string

	var err error
	if cfg.GenerationCacheTTL, err = getDuration("GENERATION_CACHE_TTL", 0); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.SinkTimeout, err = getDuration("SINK_TIMEOUT", 10*time.Second); err != nil {
		problems = append(problems, err.Error())
	}

	switch cfg.AIProvider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			problems = append(problems, "GEMINI_API_KEY not set")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			problems = append(problems, "OPENAI_API_KEY not set")
		}
	default:
		problems = append(problems, fmt.Sprintf("AI_PROVIDER %q: %v", cfg.AIProvider, utils.ErrUnsupportedDriver))
	}

	switch cfg.StoreDriver {
	case DriverFile, DriverBolt:
	case DriverPostgres:
		if cfg.PostgresURL == "" {
			problems = append(problems, "POSTGRES_URL not set")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_DRIVER %q: %v", cfg.StoreDriver, utils.ErrUnsupportedDriver))
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// getEnv returns the value of key, or fallback when unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("45s") and bare seconds ("45").
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	if d, err := time.ParseDuration(v + "s"); err == nil {
		return d, nil
	}
	return 0, fmt.Errorf("%s %q is not a duration", key, v)
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
