package config

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load looks at; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "ENV", "LOG_PATH", "STORAGE_DRIVER", "NO_CLEAR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "", cfg.LogPath)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.Console.NoClear)
}

func TestLoad_FromFlag(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
env: "prod"
storage:
  driver: "sqlite"
console:
  no_clear: true
`)

	cfg, err := Load([]string{"--config", path}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.True(t, cfg.Console.NoClear)
}

func TestLoad_EnvPathWinsOverFlag(t *testing.T) {
	clearEnv(t)
	envPath := writeConfig(t, "env: \"staging\"\n")
	flagPath := writeConfig(t, "env: \"prod\"\n")
	t.Setenv("CONFIG_PATH", envPath)

	cfg, err := Load([]string{"--config", flagPath}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "storage:\n  driver: \"memory\"\n")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load([]string{"--config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load(nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")
}

func TestLoad_Help(t *testing.T) {
	clearEnv(t)
	out := &bytes.Buffer{}

	_, err := Load([]string{"-h"}, out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-config")
}

func TestMustLoad_ReadsOSArgs(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "env: \"staging\"\nstorage:\n  driver: \"sqlite\"\n")

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"student-records", "--config", path}

	cfg := MustLoad()
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}
