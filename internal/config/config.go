package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ServiceName    = "BuddyMap-App"
	ServiceVersion = "1.0"
)

// Config はアプリケーション設定
type Config struct {
	Port              string
	GinMode           string
	GoogleMapsAPIKey  string
	OpenCageAPIKey    string
	ProviderTimeout   time.Duration
	RequestTimeout    time.Duration
	PlacesConcurrency int

	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	OTELCollectorURL     string
	OTELExporterInsecure bool
	OTELMeterInterval    time.Duration
}

// Load は.envファイルと環境変数から設定を読み込む
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv は環境変数のみから設定を組み立てる
func FromEnv() *Config {
	return &Config{
		Port:              GetEnv("PORT", "8080"),
		GinMode:           GetEnv("GIN_MODE", "release"),
		GoogleMapsAPIKey:  GetEnv("GOOGLE_MAPS_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		OpenCageAPIKey:    GetEnv("OPENCAGE_API_KEY", ""),
		ProviderTimeout:   GetEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),
		RequestTimeout:    GetEnvAsDuration("REQUEST_TIMEOUT", 20*time.Second),
		PlacesConcurrency: GetEnvAsInt("PLACES_CONCURRENCY", 6),

		ServerReadTimeout:  GetEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		ServerWriteTimeout: GetEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),

		OTELCollectorURL:     GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELExporterInsecure: GetEnvAsBool("OTEL_EXPORTER_INSECURE", true),
		OTELMeterInterval:    GetEnvAsDuration("OTEL_METER_INTERVAL", 60*time.Second),
	}
}

// Validate は起動に必要な設定が揃っているか確認する
func (c *Config) Validate() error {
	var missing []string
	if c.GoogleMapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if c.OpenCageAPIKey == "" {
		missing = append(missing, "OPENCAGE_API_KEY")
	}
	if len(missing) > 0 {
		return errors.New("必要な環境変数が設定されていません: " + strings.Join(missing, ", "))
	}
	return nil
}

// Addr はHTTPサーバーのListenアドレス
func (c *Config) Addr() string {
	return ":" + c.Port
}

func GetEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// GetEnvAsDuration は "15s" のようなGoの期間表記を読み込む
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
