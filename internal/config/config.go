// Package config resolves where askme keeps its data files and how it logs.
// Values come from defaults, then $HOME/.askme/config.toml, then ASKME_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDir  = ".askme"
	configName = "config"
	configType = "toml"
	envPrefix  = "ASKME"

	accountsFile = "accounts.txt"
	threadsFile  = "threads.txt"

	DataDirKey      = "data.dir"
	AccountsPathKey = "accounts.path"
	ThreadsPathKey  = "threads.path"
	LogLevelKey     = "log.level"
	LogFormatKey    = "log.format"

	configFileMode = 0o600
	configDirMode  = 0o700
)

type Config struct {
	// File is the config file that was read, empty when none exists.
	File         string
	DataDir      string
	AccountsPath string
	ThreadsPath  string
	LogLevel     string
	LogFormat    string
}

type document struct {
	Data     dataSection `toml:"data"`
	Accounts fileSection `toml:"accounts"`
	Threads  fileSection `toml:"threads"`
	Log      logSection  `toml:"log"`
}

type dataSection struct {
	Dir string `toml:"dir"`
}

type fileSection struct {
	Path string `toml:"path"`
}

type logSection struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultFile returns $HOME/.askme/config.toml.
func DefaultFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configName+"."+configType), nil
}

// Load resolves the configuration. An explicit file must exist; the default
// file may be missing.
func Load(cfg *viper.Viper, file string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(DataDirKey, filepath.Join(homeDir, configDir))
	cfg.SetDefault(AccountsPathKey, "")
	cfg.SetDefault(ThreadsPathKey, "")
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(LogFormatKey, "text")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if file != "" {
		cfg.SetConfigFile(file)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	dataDir := cfg.GetString(DataDirKey)
	if dataDir == "" {
		return Config{}, errors.New("data directory is empty")
	}
	dataDir, err = normalizePath(dataDir)
	if err != nil {
		return Config{}, err
	}

	accountsPath, err := filePath(cfg.GetString(AccountsPathKey), dataDir, accountsFile)
	if err != nil {
		return Config{}, err
	}
	threadsPath, err := filePath(cfg.GetString(ThreadsPathKey), dataDir, threadsFile)
	if err != nil {
		return Config{}, err
	}

	return Config{
		File:         cfg.ConfigFileUsed(),
		DataDir:      dataDir,
		AccountsPath: accountsPath,
		ThreadsPath:  threadsPath,
		LogLevel:     cfg.GetString(LogLevelKey),
		LogFormat:    cfg.GetString(LogFormatKey),
	}, nil
}

func filePath(configured, dataDir, name string) (string, error) {
	if configured == "" {
		return filepath.Join(dataDir, name), nil
	}

	return normalizePath(configured)
}

func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}

// Encode renders cfg as the TOML config document.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(document{
		Data:     dataSection{Dir: cfg.DataDir},
		Accounts: fileSection{Path: cfg.AccountsPath},
		Threads:  fileSection{Path: cfg.ThreadsPath},
		Log:      logSection{Level: cfg.LogLevel, Format: cfg.LogFormat},
	})
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

// WriteFile writes cfg to path. It refuses to replace an existing file
// unless overwrite is set.
func WriteFile(path string, cfg Config, overwrite bool) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, configFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config file %s already exists: %w", path, err)
		}
		return fmt.Errorf("open config file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write config file: %w", err), f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config file: %w", err)
	}

	return nil
}
