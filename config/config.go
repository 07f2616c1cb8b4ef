package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

type Config struct {
	Port string
	Env  string

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	JWTSecret     []byte
	JWTExpiration time.Duration

	StorageBackend string
	MediaRoot      string
	MediaURL       string
	GCSBucket      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MaxUploadBytes    int64
	MaxImageDimension int
	MaxImagePixels    int

	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// are honoured. Empty means client addresses come from the connection.
	TrustedProxies []string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", "influencer.db"),
		JWTSecret:      []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		MediaRoot:      getEnv("MEDIA_ROOT", "media"),
		MediaURL:       getEnv("MEDIA_URL", "/media/"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "influencer"),
		)
	}

	var err error
	if cfg.JWTExpiration, err = time.ParseDuration(getEnv("JWT_EXPIRATION", "24h")); err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRATION: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.MaxUploadBytes, err = strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
	}
	if cfg.MaxImageDimension, err = strconv.Atoi(getEnv("MAX_IMAGE_DIMENSION", "2048")); err != nil {
		return Config{}, fmt.Errorf("MAX_IMAGE_DIMENSION: %w", err)
	}
	if cfg.MaxImagePixels, err = strconv.Atoi(getEnv("MAX_IMAGE_PIXELS", "89478485")); err != nil {
		return Config{}, fmt.Errorf("MAX_IMAGE_PIXELS: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) validate() error {
	if c.IsProduction() && string(c.JWTSecret) == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StorageBackend {
	case "local":
	case "gcs":
		if c.GCSBucket == "" {
			return errors.New("GCS_BUCKET is required when STORAGE_BACKEND=gcs")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES: invalid entry %q", proxy)
			}
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma separated value, dropping blank items.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
