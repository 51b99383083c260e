package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort            string        // Application port
	DBUser             string        // Database user
	DBPassword         string        // Database password
	DBHost             string        // Database host
	DBPort             string        // Database port
	DBName             string        // Database name
	DBMaxOpenConns     int           // Upper bound of open connections in the pool
	DBMaxIdleConns     int           // Idle connections kept in the pool
	DBConnMaxLifetime  time.Duration // Maximum lifetime of a pooled connection
	DBConnectTimeout   time.Duration // How long startup keeps retrying the database
	RedisAddr          string        // Redis server address, empty disables the cache
	RedisPass          string        // Redis password
	RedisDB            int           // Redis database number
	UsersCacheTTL      time.Duration // TTL of the cached user listing
	RequestTimeout     time.Duration // Per-request deadline
	ShutdownTimeout    time.Duration // Grace period for in-flight requests on shutdown
	APIPrefixes        []string      // Route prefixes the handler set is mounted under
	CORSAllowedOrigins []string      // Allowed CORS origins, empty disables CORS
	LogLevel           string        // logrus level name
	IsProd             bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:            getEnv("APP_PORT", "3000"),
		DBUser:             getEnv("DB_USER", "root"),
		DBPassword:         os.Getenv("DB_PASSWORD"), // Empty password is valid
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBName:             getEnv("DB_NAME", "mindspace_db"),
		DBMaxOpenConns:     getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:     getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime:  getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBConnectTimeout:   getEnvDuration("DB_CONNECT_TIMEOUT", 60*time.Second),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASS"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		UsersCacheTTL:      getEnvDuration("USERS_CACHE_TTL", 60*time.Second),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		APIPrefixes:        getEnvList("API_PREFIXES", []string{"/"}),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", nil),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		IsProd:             os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def // Unset or malformed
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// getEnvList splits a comma separated value, dropping blanks and duplicates.
func getEnvList(key string, def []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return def
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
