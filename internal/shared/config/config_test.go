package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "memory", cfg.ResultStore)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 30*time.Minute, cfg.WizardIdleTimeout)
	assert.Equal(t, time.Duration(0), cfg.ResultTTL)
	assert.Equal(t, "aurelia", cfg.MongoDatabase)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", "prod")
	t.Setenv("RESULT_STORE", "PG")
	t.Setenv("DATABASE_URL", "postgres://aurelia@localhost/aurelia")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RESULT_TTL", "24h")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres", cfg.ResultStore)
	assert.Equal(t, "postgres://aurelia@localhost/aurelia", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 24*time.Hour, cfg.ResultTTL)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RESULT_STORE=redis\nREDIS_ADDR=cache:6379\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("RESULT_STORE")
		os.Unsetenv("REDIS_ADDR")
	})

	cfg := Load()

	assert.Equal(t, "redis", cfg.ResultStore)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestNormalizeStoreType(t *testing.T) {
	cases := map[string]string{
		"":        "memory",
		"mongodb": "mongo",
		"Redis":   "redis",
		"sqlite":  "memory",
	}
	for raw, want := range cases {
		assert.Equal(t, want, normalizeStoreType(raw), raw)
	}
}
