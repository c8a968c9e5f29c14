package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVICE_NAME", "SERVER_PORT", "LOG_LEVEL", "DATABASE_URL", "KAFKA_BROKERS",
		"ES_URL", "ES_INDEX", "ADMIN_JWT_SECRET", "ADMIN_TOKEN_TTL_MINUTES", "ADMIN_REQUIRE_TOKEN",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "hotel_menu", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "menu_items", cfg.ESIndex)
	assert.Equal(t, 15*time.Minute, cfg.Admin.TokenTTL)
	assert.False(t, cfg.Admin.RequireToken)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/menu")
	t.Setenv("KAFKA_BROKERS", "kafka:9092, kafka2:9092,")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_TOKEN_TTL_MINUTES", "5")
	t.Setenv("ADMIN_REQUIRE_TOKEN", "true")

	cfg := Load()
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "postgres://u:p@db:5432/menu", cfg.DatabaseURL)
	require.Len(t, cfg.KafkaBrokers, 2)
	assert.Equal(t, "kafka2:9092", cfg.KafkaBrokers[1])
	assert.Equal(t, []byte("s3cret"), cfg.Admin.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Admin.TokenTTL)
	assert.True(t, cfg.Admin.RequireToken)
}

func TestEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, EnvIntDefault("X_INT", 7))
	assert.True(t, EnvBoolDefault("X_BOOL", true))
	assert.Equal(t, "d", EnvDefault("X_MISSING_KEY", "d"))
	assert.Nil(t, CSV(""))
}
