package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "payments",
			SSLMode:  "disable",
		},
		Gateway: GatewayConfig{SuccessRate: 0.9},
		Reconciler: ReconcilerConfig{
			Enabled:           true,
			Interval:          time.Minute,
			ProcessingTimeout: 5 * time.Minute,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing server address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Address = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("success rate out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Gateway.SuccessRate = 1.5
		assert.Error(t, cfg.Validate())

		cfg.Gateway.SuccessRate = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("reconciler intervals must be positive when enabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.Reconciler.Interval = 0
		assert.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.Reconciler.ProcessingTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("disabled reconciler skips interval checks", func(t *testing.T) {
		cfg := validConfig()
		cfg.Reconciler = ReconcilerConfig{Enabled: false}
		assert.NoError(t, cfg.Validate())
	})
}

func TestDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "secret"
	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=payments")
	assert.Contains(t, dsn, "sslmode=disable")
}
