package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	Port     string `env:"PORT" env-default:"3000"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	BackendBaseURL string        `env:"BACKEND_BASE_URL" env-default:"http://127.0.0.1:5000"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"15s"`
	// BackendIDToken signs backend calls with a Google ID token (Cloud Run to Cloud Run).
	BackendIDToken bool `env:"BACKEND_ID_TOKEN" env-default:"false"`

	SessionSecret string        `env:"SESSION_SECRET" env-default:"dev-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"2h"`

	RateLimitRaw string `env:"RATE_LIMIT_SUBMIT" env-default:"60/min"`

	ContactEmail string   `env:"CONTACT_EMAIL" env-default:"support@vacationrecommendations.com"`
	ContactPhone string   `env:"CONTACT_PHONE" env-default:"+1 800 123 4567"`
	PhoneRegion  string   `env:"PHONE_REGION" env-default:"US"`
	KnownCities  []string `env:"KNOWN_CITIES" env-separator:","`

	RateLimitSubmit RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(cfg.BackendBaseURL), "/")
	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL must not be empty")
	}
	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = 15 * time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}
	cfg.KnownCities = trimAll(cfg.KnownCities)

	rl, err := parseRateLimit(cfg.RateLimitRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMIT value: %w", err)
	}
	cfg.RateLimitSubmit = rl

	return &cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
