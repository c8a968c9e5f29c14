package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string
	CORSOrigins []string

	DatabaseURL string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	Admin AdminConfig
}

type AdminConfig struct {
	JWTSecret    []byte
	TokenTTL     time.Duration
	RequireToken bool

	SeedUsername string
	SeedPassword string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "hotel_menu"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),
		CORSOrigins: CSV(os.Getenv("CORS_ORIGINS")),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "menu_items"),

		Admin: AdminConfig{
			JWTSecret:    []byte(os.Getenv("ADMIN_JWT_SECRET")),
			TokenTTL:     time.Duration(EnvIntDefault("ADMIN_TOKEN_TTL_MINUTES", 15)) * time.Minute,
			RequireToken: EnvBoolDefault("ADMIN_REQUIRE_TOKEN", false),
			SeedUsername: os.Getenv("ADMIN_USERNAME"),
			SeedPassword: os.Getenv("ADMIN_PASSWORD"),
		},
	}
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
