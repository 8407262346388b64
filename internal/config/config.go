package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Пустой DATABASE_URL включает режим демонстрационных данных
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Postgres pool Config
	DBMaxConns int32 `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns int32 `env:"DB_MIN_CONNS" envDefault:"5"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	RedisPoolSize int `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Geocoder Config
	GeocoderURL       string        `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent string        `env:"GEOCODER_USER_AGENT" envDefault:"SystemFailed/1.0"`
	GeocoderCountries string        `env:"GEOCODER_COUNTRY_CODES" envDefault:"in"`
	GeocodeTimeout    time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"5s"`

	// Storage Config. Пустой STORAGE_ENDPOINT отключает загрузку фото.
	StorageEndpoint  string        `env:"STORAGE_ENDPOINT"`
	StorageAccessKey string        `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string        `env:"STORAGE_SECRET_KEY"`
	StorageRegion    string        `env:"STORAGE_REGION" envDefault:"us-east-1"`
	StorageBucket    string        `env:"STORAGE_BUCKET" envDefault:"evidence"`
	StoragePublicURL string        `env:"STORAGE_PUBLIC_URL"`
	StorageUseSSL    bool          `env:"STORAGE_USE_SSL" envDefault:"false"`
	UploadTimeout    time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"30s"`

	// Backend retry Config
	BackendMaxRetries int           `env:"BACKEND_MAX_RETRIES" envDefault:"3"`
	BackendRetryDelay time.Duration `env:"BACKEND_RETRY_DELAY" envDefault:"200ms"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// SeedMode сообщает, что хостинговый бэкенд не настроен
func (c *Config) SeedMode() bool {
	return c.DatabaseURL == ""
}

// StorageEnabled сообщает, настроено ли хранилище фотографий
func (c *Config) StorageEnabled() bool {
	return c.StorageEndpoint != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		RedisPoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
		DBMaxConns:    int32(getEnvAsInt("DB_MAX_CONNS", 25)),
		DBMinConns:    int32(getEnvAsInt("DB_MIN_CONNS", 5)),

		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "SystemFailed/1.0"),
		GeocoderCountries: getEnv("GEOCODER_COUNTRY_CODES", "in"),
		GeocodeTimeout:    getEnvAsDuration("GEOCODE_TIMEOUT", 5*time.Second),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "evidence"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
		StorageUseSSL:    getEnvAsBool("STORAGE_USE_SSL", false),
		UploadTimeout:    getEnvAsDuration("UPLOAD_TIMEOUT", 30*time.Second),

		BackendMaxRetries: getEnvAsInt("BACKEND_MAX_RETRIES", 3),
		BackendRetryDelay: getEnvAsDuration("BACKEND_RETRY_DELAY", 200*time.Millisecond),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable is required")
	}

	if cfg.StorageEnabled() && cfg.StoragePublicURL == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		cfg.StoragePublicURL = fmt.Sprintf("%s://%s", scheme, cfg.StorageEndpoint)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
