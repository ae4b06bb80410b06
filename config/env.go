package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// HTTP
	HTTPAddr    string
	CorsOrigins []string
	CSRFKey     string

	// Authentication
	JWTSecret string

	// Redis - optional, login failure counters fall back to memory
	RedisAddr     string
	RedisPassword string

	// Kafka - optional, review decisions are not published without it
	KafkaBroker string

	// SMTP - optional
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Object storage
	StorageURL    string
	StorageKey    string
	StorageBucket string

	// Logging
	LogDebug  bool
	LogToFile bool
	LogDir    string

	// Other
	SnapshotIntervalSeconds int
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

// LoadConfig loads and validates all environment variables
func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8000"),
		CorsOrigins: splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost,http://localhost:3000")),
		CSRFKey:     os.Getenv("CSRF_KEY"),

		// JWT - required
		JWTSecret: getEnv("JWT_SECRET", "dummyjwt"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvWithDefault("SMTP_FROM", "noreply@archery.local"),

		StorageURL:    getEnv("STORAGE_URL", "http://localhost:54321"),
		StorageKey:    getEnv("STORAGE_KEY", ""),
		StorageBucket: getEnvWithDefault("STORAGE_BUCKET", "assets"),

		LogDebug:  getEnvWithDefault("LOG_DEBUG", "false") == "true",
		LogToFile: getEnvWithDefault("LOG_TO_FILE", "false") == "true",
		LogDir:    getEnvWithDefault("LOG_DIR", "logs"),

		SnapshotIntervalSeconds: getEnvAsInt("SNAPSHOT_INTERVAL_SECONDS", 60),
	}

	appConfig = config
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// DSN builds the postgres connection string with the archery search path.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=archery",
		c.DatabaseHost, c.DatabasePort, c.PostgresUser, c.PostgresPassword, c.DatabaseName)
}

// Helper functions
func getEnv(key string, devDefault string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	if IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return devDefault
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
