package config

import (
	"errors"  // Joining validation errors
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	AppEnv         string        // development or production
	LogLevel       string        // logrus level name
	DBDriver       string        // mysql, postgres or sqlite
	DBUser         string        // Database user (mysql)
	DBPassword     string        // Database password (mysql)
	DBHost         string        // Database host (mysql)
	DBPort         string        // Database port (mysql)
	DBName         string        // Database name (mysql)
	DatabaseURL    string        // Connection URL (postgres)
	SQLitePath     string        // Database file (sqlite)
	AutoMigrate    bool          // Run schema migration on server start
	RedisAddr      string        // Redis server address, empty disables the list cache
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	CacheTTL       time.Duration // Lifetime of cached list responses
	IdentitySecret string        // HS256 secret for edge identity tokens, empty disables the check
	FrontendURLs   []string      // Allowed CORS origins
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	return &Config{
		AppPort:        getEnv("APP_PORT", "3001"),
		AppEnv:         strings.ToLower(getEnv("APP_ENV", "development")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBDriver:       driver,
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         os.Getenv("DB_NAME"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/organizo.db"),
		AutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", driver == DriverSQLite),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        redisDB,
		CacheTTL:       getEnvDuration("CACHE_TTL", 60*time.Second),
		IdentitySecret: os.Getenv("IDENTITY_JWT_SECRET"),
		FrontendURLs:   splitList(getEnv("FRONTEND_URL", "http://localhost:5173")),
	}
}

// IsProd reports whether the app runs in production
func (c *Config) IsProd() bool { return c.AppEnv == "production" }

// IsDev reports whether detailed errors may be returned to clients
func (c *Config) IsDev() bool { return c.AppEnv == "development" }

// CacheEnabled reports whether a Redis address is configured
func (c *Config) CacheEnabled() bool { return c.RedisAddr != "" }

// MySQLDSN builds the MySQL Data Source Name
func (c *Config) MySQLDSN() string {
	// clientFoundRows makes RowsAffected count matched rows, not changed rows
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName +
		"?parseTime=true&charset=utf8mb4&clientFoundRows=true"
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var errs []error
	if port, err := strconv.Atoi(c.AppPort); err != nil {
		errs = append(errs, fmt.Errorf("invalid APP_PORT %q: must be a number", c.AppPort))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid APP_PORT %d: must be between 1 and 65535", port))
	}
	switch c.AppEnv {
	case "development", "production", "test":
	default:
		errs = append(errs, fmt.Errorf("invalid APP_ENV %q: must be development, production or test", c.AppEnv))
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.DBName == "" || c.DBUser == "" {
			errs = append(errs, errors.New("DB_NAME and DB_USER are required for the mysql driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid DB_DRIVER %q: must be mysql, postgres or sqlite", c.DBDriver))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid CACHE_TTL %s: must be positive", c.CacheTTL))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// splitList parses a comma separated list, dropping blanks and trailing slashes
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if v := strings.TrimRight(strings.TrimSpace(p), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
