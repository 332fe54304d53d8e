package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, filepath.Join(home, ".askme"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".askme", "accounts.txt"), cfg.AccountsPath)
	assert.Equal(t, filepath.Join(home, ".askme", "threads.txt"), cfg.ThreadsPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	content := "[data]\ndir = \"" + dataDir + "\"\n\n[threads]\npath = \"~/elsewhere/threads.txt\"\n\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".askme"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".askme", "config.toml"), []byte(content), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".askme", "config.toml"), cfg.File)
	assert.Equal(t, filepath.Join(dataDir, "accounts.txt"), cfg.AccountsPath)
	assert.Equal(t, filepath.Join(home, "elsewhere", "threads.txt"), cfg.ThreadsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASKME_ACCOUNTS_PATH", filepath.Join(home, "env-accounts.txt"))
	t.Setenv("ASKME_LOG_FORMAT", "json")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "env-accounts.txt"), cfg.AccountsPath)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestWriteFileRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want, err := Load(viper.New(), "")
	require.NoError(t, err)

	path := filepath.Join(home, ".askme", "config.toml")
	require.NoError(t, WriteFile(path, want, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc document
	require.NoError(t, toml.Unmarshal(data, &doc))
	assert.Equal(t, want.ThreadsPath, doc.Threads.Path)

	got, err := Load(viper.New(), path)
	require.NoError(t, err)
	want.File = path
	assert.Equal(t, want, got)

	err = WriteFile(path, want, false)
	assert.ErrorIs(t, err, os.ErrExist)
	require.NoError(t, WriteFile(path, want, true))
}
