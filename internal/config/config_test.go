package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr)
	assert.Equal(t, "data/finance.db", cfg.Database.Path)
	assert.Equal(t, DefaultAuthSecret, cfg.Auth.Secret)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "https://api.twelvedata.com", cfg.Stocks.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.Advisor.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINANCE_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("FINANCE_AUTH_SECRET", "prod-secret")
	t.Setenv("FINANCE_AUTH_TOKENTTLMINUTES", "45")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "prod-secret", cfg.Auth.Secret)
	assert.Equal(t, 45, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_LegacySecretVariable(t *testing.T) {
	t.Setenv("SECRET1", "legacy-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.Auth.Secret)
}
