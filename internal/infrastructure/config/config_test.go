package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join("data", "coaches.json"), cfg.Storage.Path(cfg.Storage.CoachesFile))
	assert.Len(t, cfg.Security.AllowedOrigins(), 4)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddr())
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATA_DIR", "/srv/league")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/league/coaches.json", cfg.Storage.Path(cfg.Storage.CoachesFile))
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Storage:  StorageConfig{Driver: StorageDriverFile, DataDir: "data"},
			Database: DatabaseConfig{Host: "localhost", Name: "courtside"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid file driver", func(*Config) {}, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server port"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "s3" }, "unknown storage driver"},
		{"file driver without dir", func(c *Config) { c.Storage.DataDir = "" }, "data dir"},
		{"postgres without host", func(c *Config) {
			c.Storage.Driver = StorageDriverPostgres
			c.Database.Host = ""
		}, "database host"},
		{"redis without ttl", func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.CacheTTL = 0
		}, "cache ttl"},
		{"negative rate limit", func(c *Config) { c.Security.RateLimitRequests = -1 }, "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoragePathKeepsAbsoluteNames(t *testing.T) {
	cfg := StorageConfig{DataDir: "data"}
	assert.Equal(t, "/tmp/coaches.json", cfg.Path("/tmp/coaches.json"))
}

func TestAllowedOriginsTrimsBlanks(t *testing.T) {
	cfg := SecurityConfig{CORSAllowedOrigins: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}
