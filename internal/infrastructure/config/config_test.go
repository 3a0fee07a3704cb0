package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, UploadLocal, cfg.Upload.Backend)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 10, cfg.RateLimit.AuthPerMinute)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	_, err = LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"JWT_SECRET": "   "}))
	require.Error(t, err)
}

func TestLoadFrom_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "x",
		"DB_DRIVER":  "sqlite",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoadFrom_RejectsNonPositiveAuthRate(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
			"JWT_SECRET":                 "x",
			"RATE_LIMIT_AUTH_PER_MINUTE": v,
		}))
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "RATE_LIMIT_AUTH_PER_MINUTE")
	}
}

func TestPostgresURL(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: 5433, Name: "cms", User: "app", Password: "p@ss", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss@db:5433/cms?sslmode=require", c.URL())
}
