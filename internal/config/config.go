package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrMissingAPIKey is returned when NEWS_API_KEY is absent or empty.
var ErrMissingAPIKey = errors.New("NEWS_API_KEY must be set")

// Common contains NewsAPI parameters shared by every service.
type Common struct {
	NewsAPIKey     string
	NewsAPIBaseURL string
	PageSize       int
	HTTPTimeout    time.Duration
}

// Analyzer holds configuration for the one-shot CLI run.
type Analyzer struct {
	Common
	Topic string
}

// API describes HTTP-layer configuration.
type API struct {
	Common
	BindAddr     string
	GeminiAPIKey string
	GeminiModel  string
}

// LoadAnalyzer builds an Analyzer config from environment variables.
// It fails before any network use when the NewsAPI credential is missing.
func LoadAnalyzer() (*Analyzer, error) {
	common, err := loadCommon()
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		Common: *common,
		Topic:  getEnv("NEWS_TOPIC", "technology"),
	}, nil
}

// LoadAPI builds an API config from environment variables.
func LoadAPI() (*API, error) {
	common, err := loadCommon()
	if err != nil {
		return nil, err
	}

	return &API{
		Common:       *common,
		BindAddr:     getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

func loadCommon() (*Common, error) {
	c := &Common{
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL: getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),
		PageSize:       getInt("NEWS_PAGE_SIZE", 10),
		HTTPTimeout:    getDuration("NEWS_HTTP_TIMEOUT", "30s"),
	}

	if c.NewsAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if c.PageSize <= 0 || c.PageSize > 100 {
		return nil, fmt.Errorf("NEWS_PAGE_SIZE must be between 1 and 100")
	}
	if c.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("NEWS_HTTP_TIMEOUT must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
