package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "KandySummer"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultCapacity      = 500
	defaultAuthDelay     = time.Second
	defaultSubmitDelay   = 1500 * time.Millisecond
	defaultMaxDocBytes   = 2 << 20
	defaultShutdownDelay = 10 * time.Second
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName string
	AppEnv  string
	Port    string

	LogLevel string

	// DatabaseURL and RedisURL are both optional; when neither is set the
	// application falls back to an in-process store.
	DatabaseURL string
	RedisURL    string

	// EventCapacity is the total ticket capacity the stats report against.
	EventCapacity int

	// AuthDelay and SubmitDelay reproduce the deliberate processing pause of
	// the login/signup and registration flows. Tests set them to zero.
	AuthDelay   time.Duration
	SubmitDelay time.Duration

	// AllowRepeatEmail permits the same email to register more than once.
	AllowRepeatEmail bool

	// MaxDocumentBytes caps the encoded size of an uploaded identity document.
	MaxDocumentBytes int

	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:          getEnv("APP_NAME", defaultAppName),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Port:             getEnv("PORT", defaultPort),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		EventCapacity:    defaultCapacity,
		AuthDelay:        defaultAuthDelay,
		SubmitDelay:      defaultSubmitDelay,
		AllowRepeatEmail: true,
		MaxDocumentBytes: defaultMaxDocBytes,
		ShutdownPeriod:   defaultShutdownDelay,
	}

	if v := os.Getenv("EVENT_CAPACITY"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil || capacity <= 0 {
			return Config{}, fmt.Errorf("invalid EVENT_CAPACITY: %q", v)
		}
		cfg.EventCapacity = capacity
	}

	if v := os.Getenv("MAX_DOCUMENT_BYTES"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_DOCUMENT_BYTES: %q", v)
		}
		cfg.MaxDocumentBytes = limit
	}

	if v := os.Getenv("ALLOW_REPEAT_EMAIL"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ALLOW_REPEAT_EMAIL: %q", v)
		}
		cfg.AllowRepeatEmail = allow
	}

	var err error
	if cfg.AuthDelay, err = durationEnv("AUTH_DELAY", cfg.AuthDelay); err != nil {
		return Config{}, err
	}
	if cfg.SubmitDelay, err = durationEnv("SUBMIT_DELAY", cfg.SubmitDelay); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
