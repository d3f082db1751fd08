package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Push      PushConfig
	Dispatch  DispatchConfig
	Scheduler SchedulerConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// PushConfig holds web-push (VAPID) configuration
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string // contact address reported to push services
	SendTimeout     time.Duration
}

// DispatchConfig holds delivery fan-out tuning
type DispatchConfig struct {
	BatchSize  int
	BatchPause time.Duration
}

// SchedulerConfig holds campaign scheduler tuning
type SchedulerConfig struct {
	SweepInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Push delivery configuration
	if cfg.Push.VAPIDPublicKey, err = requireEnv("VAPID_PUBLIC_KEY"); err != nil {
		return nil, err
	}
	if cfg.Push.VAPIDPrivateKey, err = requireEnv("VAPID_PRIVATE_KEY"); err != nil {
		return nil, err
	}
	if cfg.Push.Subscriber, err = requireEnv("VAPID_SUBSCRIBER"); err != nil {
		return nil, err
	}
	cfg.Push.SendTimeout, err = durationEnv("PUSH_SEND_TIMEOUT_SECONDS", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// Dispatch configuration
	batchSize := getEnvWithDefault("DISPATCH_BATCH_SIZE", "100")
	cfg.Dispatch.BatchSize, err = strconv.Atoi(batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DISPATCH_BATCH_SIZE: %w", err)
	}
	cfg.Dispatch.BatchPause, err = durationEnv("DISPATCH_BATCH_PAUSE_MS", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	// Scheduler configuration
	cfg.Scheduler.SweepInterval, err = durationEnv("SCHEDULER_SWEEP_INTERVAL_SECONDS", time.Minute)
	if err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = []string{getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// durationEnv parses a duration from an env var. The unit is taken from the key
// suffix (_SECONDS or _MS); absent or empty values fall back to the default.
func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	unit := time.Second
	if len(key) > 3 && key[len(key)-3:] == "_MS" {
		unit = time.Millisecond
	}
	return time.Duration(n) * unit, nil
}
