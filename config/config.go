package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking engine.
	KitchenCacheTTLSeconds int `mapstructure:"KITCHEN_CACHE_TTL_SECONDS"`
	SessionIdleMinutes     int `mapstructure:"SESSION_IDLE_MINUTES"`

	// Notification channels.
	TelegramBotToken        string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	NotifyWorkers           int    `mapstructure:"NOTIFY_WORKERS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "kitchenrent")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("KITCHEN_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SESSION_IDLE_MINUTES", 30)
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("NOTIFY_WORKERS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// ErrMissingJWTSecret is returned when production runs without a signing key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set when ENV=production")

// Validate rejects settings that are unsafe to serve with.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// KitchenCacheTTL is how long kitchen metadata stays in Redis.
func KitchenCacheTTL() time.Duration {
	if AppConfig.KitchenCacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(AppConfig.KitchenCacheTTLSeconds) * time.Second
}

// SessionIdleTimeout is how long an untouched booking session survives.
func SessionIdleTimeout() time.Duration {
	if AppConfig.SessionIdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(AppConfig.SessionIdleMinutes) * time.Minute
}
