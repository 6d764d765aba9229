package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.GRPC.Enabled)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, cfg.Database.WriterDSN, cfg.Database.ReaderDSN)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, "storehouse", cfg.Observability.ServiceName)
	assert.Equal(t, "/metrics", cfg.Observability.PrometheusPath)
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("DB_WRITER_DSN", "file:storehouse.db")
	t.Setenv("DB_READER_DSN", "file:replica.db")
	t.Setenv("DB_MAX_CONN_LIFETIME", "90s")
	t.Setenv("DB_AUTO_CREATE_SCHEMA", "true")
	t.Setenv("PASSWORD_BCRYPT_COST", "4")
	t.Setenv("OBS_LOG_LEVEL", "DEBUG")
	t.Setenv("OBS_PROMETHEUS_PATH", "prom")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:replica.db", cfg.Database.ReaderDSN)
	assert.Equal(t, 90*time.Second, cfg.Database.MaxConnLifetime)
	assert.True(t, cfg.Database.AutoCreateSchema)
	assert.Equal(t, 4, cfg.Security.BcryptCost)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "/prom", cfg.Observability.PrometheusPath)
}

func TestNew_Invalid(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := New()
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		t.Setenv("PASSWORD_BCRYPT_COST", "99")
		_, err := New()
		assert.ErrorContains(t, err, "PASSWORD_BCRYPT_COST")
	})

	t.Run("negative http port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "-1")
		_, err := New()
		assert.ErrorContains(t, err, "invalid HTTP port")
	})

	t.Run("empty writer dsn", func(t *testing.T) {
		t.Setenv("DB_WRITER_DSN", "")
		_, err := New()
		assert.ErrorContains(t, err, "DB_WRITER_DSN")
	})

	t.Run("malformed values are reported together", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		t.Setenv("DB_AUTO_CREATE_SCHEMA", "sometimes")
		_, err := New()
		require.Error(t, err)
		assert.ErrorContains(t, err, "HTTP_PORT")
		assert.ErrorContains(t, err, "DB_AUTO_CREATE_SCHEMA")
	})

	t.Run("grpc port ignored while disabled", func(t *testing.T) {
		t.Setenv("GRPC_PORT", "0")
		_, err := New()
		assert.NoError(t, err)
	})
}
