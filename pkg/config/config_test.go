package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "STORAGE_DRIVER", "SITE_CONFIG_PATH", "NEXT_PUBLIC_CONFIG_PATH", "S3_ENDPOINT", "R2_ACCOUNT_ID", "SEED_SAMPLE_DATA"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.Server.SeedSample)
	assert.Equal(t, "emlakweb.db", cfg.Database.URL)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "site.json", cfg.Site.ConfigPath)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.Empty(t, cfg.Storage.Endpoint)
}

func TestLoad_LegacyConfigPath(t *testing.T) {
	t.Setenv("SITE_CONFIG_PATH", "")
	t.Setenv("NEXT_PUBLIC_CONFIG_PATH", "config/ozel.json")

	assert.Equal(t, "config/ozel.json", Load().Site.ConfigPath)

	t.Setenv("SITE_CONFIG_PATH", "https://cdn.ornek.com/site.json")
	assert.Equal(t, "https://cdn.ornek.com/site.json", Load().Site.ConfigPath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("S3_ENDPOINT", "")
	t.Setenv("R2_ACCOUNT_ID", "abc123")
	t.Setenv("SESSION_TTL_HOURS", "sayi-degil")
	t.Setenv("SEED_SAMPLE_DATA", "true")

	cfg := Load()
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "https://abc123.r2.cloudflarestorage.com", cfg.Storage.Endpoint)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.True(t, cfg.Server.SeedSample)
}
