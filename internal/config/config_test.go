package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks every variable LoadConfig reads so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_PORT", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONNECT_TIMEOUT",
		"REDIS_ADDR", "REDIS_PASS", "REDIS_DB", "USERS_CACHE_TTL", "REQUEST_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "API_PREFIXES", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "IS_PROD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "", cfg.DBPassword)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "mindspace_db", cfg.DBName)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 60*time.Second, cfg.DBConnectTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 60*time.Second, cfg.UsersCacheTTL)
	assert.Equal(t, []string{"/"}, cfg.APIPrefixes)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("USERS_CACHE_TTL", "5m")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("API_PREFIXES", "/, /auth ,/auth,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.UsersCacheTTL)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"/", "/auth"}, cfg.APIPrefixes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProd)
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("SHUTDOWN_TIMEOUT", "-3s")
	t.Setenv("API_PREFIXES", " , ")

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"/"}, cfg.APIPrefixes)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBUser: "app", DBPassword: "secret", DBHost: "db", DBPort: "3307", DBName: "mindspace_db"}

	assert.Equal(t, "app:secret@tcp(db:3307)/mindspace_db?charset=utf8mb4&parseTime=true&loc=Local", cfg.DSN())
}
