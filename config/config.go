package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Postgres    PostgresConfig
	Remote      RemoteConfig
	Sync        SyncConfig
	WS          WSConfig
	HTTP        HTTPConfig
	StorageType string
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type RemoteConfig struct {
	Endpoint       string
	Token          string
	PageSize       int
	MaxPages       int
	RetryCount     int
	TimeoutSeconds int
}

type SyncConfig struct {
	Schedule string
}

type HTTPConfig struct {
	Port string
}

type WSConfig struct {
	KeepAliveSeconds int
}

func LoadConfig() Config {
	storageType := mustGetEnv("STORAGE_TYPE")

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port: mustGetEnv("HTTP_PORT"),
		},
		WS: WSConfig{
			KeepAliveSeconds: mustGetInt("WS_KEEPALIVE_SECONDS"),
		},
		Remote: RemoteConfig{
			Endpoint:       mustGetEnv("CATALOG_ENDPOINT"),
			Token:          getEnv("CATALOG_TOKEN", ""),
			PageSize:       getInt("CATALOG_PAGE_SIZE", 100),
			MaxPages:       getInt("CATALOG_MAX_PAGES", 1000),
			RetryCount:     getInt("CATALOG_RETRY_COUNT", 3),
			TimeoutSeconds: getInt("CATALOG_TIMEOUT_SECONDS", 30),
		},
		Sync: SyncConfig{
			Schedule: getEnv("SYNC_SCHEDULE", "@every 10m"),
		},
	}

	if storageType == "postgres" {
		cfg.Postgres = PostgresConfig{
			User:     mustGetEnv("POSTGRES_USER"),
			Password: mustGetEnv("POSTGRES_PASSWORD"),
			DB:       mustGetEnv("POSTGRES_DB"),
			Host:     mustGetEnv("POSTGRES_HOST"),
			Port:     mustGetInt("POSTGRES_PORT"),
			SSLMode:  mustGetEnv("POSTGRES_SSLMODE"),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}
