package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	DataDir  string
	StateDir string
	DBPath   string
	KVPath   string
	Backend  string
	DSN      string
	LogLevel string

	// CurriculumPath replaces the built-in curriculum when set.
	CurriculumPath string
}

// DefaultDataDir is ~/.cgpatrack.
func DefaultDataDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".cgpatrack"), nil
}

// New resolves configuration for dataDir. Values come from <dataDir>/config.yaml (or
// configFile when set), then CGPATRACK_* environment variables, then defaults.
func New(dataDir, configFile string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = dir
	}
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return Config{}, fmt.Errorf("expand data dir: %w", err)
	}
	dataDir = expanded

	v := viper.New()
	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.dsn", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
	v.SetEnvPrefix("cgpatrack")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	stateDir := filepath.Join(dataDir, ".cgpatrack")
	cfg := Config{
		DataDir:  dataDir,
		StateDir: stateDir,
		DBPath:   filepath.Join(stateDir, "cgpatrack.db"),
		KVPath:   filepath.Join(stateDir, "kv.json"),
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString("store.backend"))),
		DSN:      v.GetString("store.dsn"),
		LogLevel: v.GetString("log.level"),
	}
	if path := strings.TrimSpace(v.GetString("catalog.path")); path != "" {
		if cfg.CurriculumPath, err = homedir.Expand(path); err != nil {
			return Config{}, fmt.Errorf("expand catalog path: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
		return nil
	case BackendPostgres:
		if strings.TrimSpace(c.DSN) == "" {
			return fmt.Errorf("store.dsn is required for the postgres backend")
		}
		return nil
	default:
		return fmt.Errorf("unsupported store backend %q", c.Backend)
	}
}
