package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	MetricsEnabled   bool
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	// Driver is sqlite or postgres. The default is a local sqlite file
	// since this is a single-user service; postgres exists for shared
	// deployments.
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ImportConfig struct {
	// RulesPath points at an optional YAML file extending the built-in
	// classification keyword tables.
	RulesPath string
	// MaxParallelFiles bounds how many files of one batch parse
	// concurrently. Commits are always serialized regardless.
	MaxParallelFiles int
	// MaxFileSizeBytes rejects oversized uploads before parsing.
	MaxFileSizeBytes int64
}

type SecurityConfig struct {
	// APITokenHash is the bcrypt hash of the static bearer token that
	// guards mutating endpoints. Empty disables auth, for local use.
	APITokenHash       string
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "localhost"),
			Environment:    getEnv("APP_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "financehub.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "financehub_user"),
			Password:        getEnv("DB_PASSWORD", "financehub_password"),
			Name:            getEnv("DB_NAME", "financehub_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Import: ImportConfig{
			RulesPath:        getEnv("IMPORT_RULES_PATH", ""),
			MaxParallelFiles: getIntEnv("IMPORT_MAX_PARALLEL_FILES", 4),
			MaxFileSizeBytes: int64(getIntEnv("IMPORT_MAX_FILE_SIZE_MB", 10)) << 20,
		},
		Security: SecurityConfig{
			APITokenHash:       getEnv("API_TOKEN_HASH", ""),
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *Config) loadCORSAllowOrigins() []string {
	raw := getEnv("CORS_ALLOW_ORIGINS", "")
	if raw == "" {
		if c.IsProduction() {
			return nil
		}
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
