package config

import (
	"time"

	"github.com/spf13/viper"
)

// Persistence mode for the booking service.
const (
	ModeMock     = "mock"
	ModeDatabase = "database"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
}

type AppConfig struct {
	Port string
	Env  string
	// Mode is "mock" (keyed-blob store, seeded directory, simulated
	// latency) or "database" (PostgreSQL-backed repositories).
	Mode        string
	MockLatency time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// UpstreamConfig points at the real backend API the mock services stand
// in for. Only pkg/apiclient consumes it.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	mode := viper.GetString("APP_MODE")
	if mode == "" {
		mode = ModeMock
	}

	mockLatency, err := time.ParseDuration(viper.GetString("MOCK_LATENCY"))
	if err != nil {
		mockLatency = 300 * time.Millisecond
	}

	upstreamTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_API_TIMEOUT"))
	if err != nil {
		upstreamTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			Mode:        mode,
			MockLatency: mockLatency,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_API_BASE_URL"),
			Timeout: upstreamTimeout,
		},
	}

	return config, nil
}
