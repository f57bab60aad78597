package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"test"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "glossy.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	withArgs(t, "-a", "https://api.example.com", "-t", "30", "-d", "/tmp/x.db")

	cfg := LoadConfig()
	require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	withArgs(t)
	t.Setenv("GLOSSY_API_URL", "https://env.example.com")
	t.Setenv("GLOSSY_REQUEST_TIMEOUT", "5s")

	cfg := LoadConfig()
	require.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com",
		"request_timeout": "15s",
		"database_path": "/tmp/json.db"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/json.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example.com"}`), 0o600))

	withArgs(t, "-c", path, "-a", "https://flag.example.com")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
}
