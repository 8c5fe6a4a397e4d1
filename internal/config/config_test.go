package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_DefaultsFromEnvironment(t *testing.T) {
	// Без CONFIG_PATH конфиг собирается из окружения и значений по умолчанию.
	t.Setenv("CONFIG_PATH", "")

	cfg := MustLoad()
	require.NotNil(t, cfg)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Address())
	assert.Equal(t, "db.json", cfg.FilePath)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "change_this_secret_in_production", cfg.JWTSecretKey)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.HeartbeatInterval)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_FILE", "/tmp/hosting.json")
	t.Setenv("JWT_SECRET", "real_secret")
	t.Setenv("CONSOLE_HEARTBEAT_INTERVAL", "1s")

	cfg := MustLoad()

	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "/tmp/hosting.json", cfg.FilePath)
	assert.Equal(t, "real_secret", cfg.JWTSecretKey)
	assert.Equal(t, time.Second, cfg.HeartbeatInterval)
}
