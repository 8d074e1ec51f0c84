package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecocalc/internal/logging"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format)
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `logging:
  level: debug
  format: json
output:
  format: yaml
  no_color: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
	assert.Equal(t, OutputYAML, cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0o600))

	t.Setenv("ECOCALC_OUTPUT", "json")
	t.Setenv("ECOCALC_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	t.Setenv("ECOCALC_OUTPUT", "xml")

	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "xml")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json output", mutate: func(c *Config) { c.Output.Format = OutputJSON }},
		{name: "unknown output", mutate: func(c *Config) { c.Output.Format = "csv" }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "logfmt" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSave_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.SetConfigPath(path)
	cfg.Output.Format = OutputJSON
	cfg.Logging.File = "/tmp/ecocalc.log"
	require.NoError(t, cfg.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestSave_EmptyPath(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Save())
}

func TestResolvePath(t *testing.T) {
	env := func(vals map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vals[k]
			return v, ok
		}
	}

	assert.Equal(t, "/flag.yaml", ResolvePath("/flag.yaml", env(map[string]string{EnvConfigPath: "/env.yaml"})))
	assert.Equal(t, "/env.yaml", ResolvePath("", env(map[string]string{EnvConfigPath: "/env.yaml"})))
	assert.Equal(t, DefaultPath(), ResolvePath("", env(nil)))
}

func TestToLoggingConfig(t *testing.T) {
	cfg := New()
	cfg.Logging.File = "/var/log/ecocalc.log"

	lc := cfg.ToLoggingConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, logging.FormatConsole, lc.Format)
	assert.Equal(t, "/var/log/ecocalc.log", lc.File)
}
