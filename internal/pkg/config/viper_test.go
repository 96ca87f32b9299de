package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  env: staging
  server:
    http:
      port: 8080
      read_timeout_seconds: 5
    cors: "https://a.example, https://b.example,,"
instrument:
  enabled: true
  trace_sample_ratio: 0.25
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.GetString("app.env"))
	assert.Equal(t, 8080, cfg.GetInt("app.server.http.port"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.True(t, cfg.GetBool("instrument.enabled"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.trace_sample_ratio"), 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetArray("app.server.cors"))
	assert.Empty(t, cfg.GetArray("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	_, err := NewViperFromBytes("  ", []byte(sampleYAML))
	assert.ErrorIs(t, err, ErrConfigTypeRequired)
}

func TestWithDefaultsAndEnv(t *testing.T) {
	t.Setenv("SIMPLEAUTH_TEST_SECRET", "from-env")
	t.Setenv("SIMPLEAUTH_TEST_PORT", "9999")

	cfg, err := NewViperFromBytes("yaml", []byte("app:\n  name: x\n"),
		WithDefaults(map[string]any{
			"app.env":              "development",
			"app.server.http.port": 3000,
		}),
		WithEnv(map[string][]string{
			"jwt.secret":           {"SIMPLEAUTH_TEST_SECRET"},
			"app.server.http.port": {"SIMPLEAUTH_TEST_PORT"},
			"app.env":              {"SIMPLEAUTH_TEST_UNSET_ENV"},
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GetString("jwt.secret"))
	assert.Equal(t, 9999, cfg.GetInt("app.server.http.port"))
	assert.Equal(t, "development", cfg.GetString("app.env"))
}

func TestNewViper_MissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := NewViper(filepath.Join(dir, "nope", "config.yaml"),
		WithDefaults(map[string]any{"app.env": "development"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.GetString("app.env"))
}

func TestNewViper_ReadsFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SIMPLEAUTH_DOTENV_SECRET=dotenv-secret\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SIMPLEAUTH_DOTENV_SECRET") })

	cfg, err := NewViper(filepath.Join(dir, "config.yaml"),
		WithEnv(map[string][]string{"jwt.secret": {"SIMPLEAUTH_DOTENV_SECRET"}}),
	)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.GetString("app.env"))
	assert.Equal(t, "dotenv-secret", cfg.GetString("jwt.secret"))
}
