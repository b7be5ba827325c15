package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "adventureworks", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("AW_DATABASE_PASSWORD", "s3cret")
		t.Setenv("AW_DATABASE_HOST", "db.internal")
		t.Setenv("AW_REDIS_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.True(t, cfg.Redis.Enabled)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "pw",
		DBName:   "adventureworks",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=pw dbname=adventureworks sslmode=disable",
		cfg.DSN(),
	)
	assert.Equal(t,
		"postgres://app:pw@localhost:5432/adventureworks?sslmode=disable",
		cfg.URL(),
	)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects missing host", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Port: 5432, DBName: "adventureworks"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Host: "localhost", Port: 70000, DBName: "adventureworks"}}
		assert.Error(t, cfg.Validate())
	})
}
