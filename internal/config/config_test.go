package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "")
	path := writeConfigFile(t, `{
		"token": "file-token",
		"collection_id": 7,
		"per_page": 25,
		"cache_path": "/tmp/raindrop-test/cache.json",
		"cache_ttl_minutes": 10,
		"log_path": "/tmp/raindrop-test/test.log"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, int64(7), cfg.CollectionID)
	assert.Equal(t, 25, cfg.PerPage)
	assert.Equal(t, 10, cfg.CacheTTLMinutes)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "")
	t.Setenv(XdgConfigHome, t.TempDir())
	path := writeConfigFile(t, `{"token": "file-token"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, DefaultCacheTTLMinutes, cfg.CacheTTLMinutes)
	assert.NotEmpty(t, cfg.CachePath)
	assert.NotEmpty(t, cfg.LogPath)
}

func TestLoadEnvTokenWins(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "env-token")
	path := writeConfigFile(t, `{
		"token": "file-token",
		"cache_path": "/tmp/raindrop-test/cache.json",
		"log_path": "/tmp/raindrop-test/test.log"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token, "RAINDROP_TOKEN must win over the file token")
}

func TestLoadMissingFileWithEnvToken(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "env-token")
	t.Setenv(XdgConfigHome, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err, "env token makes the tool usable without a config file")
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, DefaultCacheTTLMinutes, cfg.CacheTTLMinutes)
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "")
	path := writeConfigFile(t, `{not json}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "")
	path := filepath.Join(t.TempDir(), "config.json")

	saved := *NewConfig()
	saved.Token = "round-trip"
	saved.CollectionID = 42
	saved.CachePath = "/tmp/raindrop-test/cache.json"
	saved.LogPath = "/tmp/raindrop-test/test.log"
	require.NoError(t, Save(saved, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestProviderAccessors(t *testing.T) {
	cfg := NewConfig()
	cfg.Token = "token"
	cfg.CollectionID = 7
	cfg.CacheTTLMinutes = 10

	provider := NewProvider(cfg)
	assert.Equal(t, "token", provider.GetToken())
	assert.Equal(t, int64(7), provider.GetCollectionID())
	assert.Equal(t, DefaultPerPage, provider.GetPerPage())
	assert.Equal(t, 10*time.Minute, provider.GetCacheTTL())
}
