package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"seekr/backend/internal/logger"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Upload    UploadConfig
	Retention RetentionConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LLMConfig struct {
	Provider        string
	Model           string
	MaxTokens       int
	Temperature     float64
	Timeout         time.Duration
	AnthropicAPIKey string
	GeminiAPIKey    string
}

type UploadConfig struct {
	MaxFileSize int64
}

type RetentionConfig struct {
	ResumeTTL     time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	Level        string
	Format       string
	TimeFormat   string
	ReportCaller bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("BACKEND_HOST", "0.0.0.0"),
			Port:         getEnv("BACKEND_PORT", "8000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "seekr"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", "anthropic")),
			Model:           getEnv("LLM_MODEL", ""),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 4096),
			Temperature:     getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", "120s"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Retention: RetentionConfig{
			ResumeTTL:     getEnvAsDuration("RESUME_TTL", "1440h"),
			SweepInterval: getEnvAsDuration("RESUME_SWEEP_INTERVAL", "1h"),
		},
		Log: LogConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "json"),
			TimeFormat:   getEnv("LOG_TIME_FORMAT", ""),
			ReportCaller: getEnvAsBool("LOG_CALLER", false),
		},
	}
}

// ListenAddr returns host:port for the HTTP listener.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// IsSQLite reports whether DATABASE_URL points at a sqlite database.
func (c *Config) IsSQLite() bool {
	url := strings.ToLower(c.Database.URL)
	return strings.HasPrefix(url, "sqlite:") || strings.HasPrefix(url, "file:")
}

// SQLitePath strips the scheme from a sqlite DATABASE_URL.
func (c *Config) SQLitePath() string {
	url := c.Database.URL
	for _, prefix := range []string{"sqlite:///", "sqlite://", "sqlite:"} {
		if strings.HasPrefix(strings.ToLower(url), prefix) {
			url = url[len(prefix):]
			break
		}
	}
	if url == "" {
		return ":memory:"
	}
	return url
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
