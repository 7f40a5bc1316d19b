package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Production())
	assert.Empty(t, cfg.DB)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "/state/quizdeck/quizdeck.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "espeak", cfg.Speech.Command)
	assert.Equal(t, 140, cfg.Speech.Rate)
	assert.Equal(t, "https://flagcdn.com", cfg.Flags.CDN)
	assert.Equal(t, 320, cfg.Flags.Size)
	assert.False(t, cfg.Flags.QR)
	assert.Empty(t, cfg.Datasets.Dir)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "quizdeck.yaml", `
env: production
seed: 42
log:
  level: debug
speech:
  enabled: false
  command: say
flags:
  size: 80
  qr: true
datasets:
  dir: /data
`)
	cfg, err := Load(New(), Options{ConfigFile: path, EnvFile: filepath.Join(t.TempDir(), "none")})
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, "say", cfg.Speech.Command)
	assert.Equal(t, 140, cfg.Speech.Rate, "unset keys keep their default")
	assert.Equal(t, 80, cfg.Flags.Size)
	assert.True(t, cfg.Flags.QR)
	assert.Equal(t, "/data", cfg.Datasets.Dir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "quizdeck.yaml", "speech:\n  rate: 100\n")
	t.Setenv("QUIZDECK_SPEECH_RATE", "200")
	t.Setenv("QUIZDECK_DB", "/tmp/x.db")

	cfg, err := Load(New(), Options{ConfigFile: path, EnvFile: filepath.Join(t.TempDir(), "none")})
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Speech.Rate)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
}

func TestLoadDotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "QUIZDECK_FLAGS_CDN=https://cdn.example.test\n")
	t.Cleanup(func() { os.Unsetenv("QUIZDECK_FLAGS_CDN") })

	cfg, err := Load(New(), Options{ConfigFile: writeFile(t, "c.yaml", "{}\n"), EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.test", cfg.Flags.CDN)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(New(), Options{
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
		EnvFile:    filepath.Join(t.TempDir(), "none"),
	})
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "speech: [unclosed\n")
	_, err := Load(New(), Options{ConfigFile: path, EnvFile: filepath.Join(t.TempDir(), "none")})
	assert.ErrorContains(t, err, "error loading config file")
}
