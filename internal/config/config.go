package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// EnvPrefix prefixes every environment override, e.g. SLT_DB_DRIVER.
const EnvPrefix = "SLT"

// Config represents the slt configuration
type Config struct {
	DataDir    string `mapstructure:"data_dir"`
	DBDriver   string `mapstructure:"db_driver"`   // "sqlite3" or "sqlite"
	DBPath     string `mapstructure:"db_path"`     // defaults to <data_dir>/slt.db
	LogLevel   string `mapstructure:"log_level"`   // zerolog level name
	LogFormat  string `mapstructure:"log_format"`  // "console" or "json"
	RosterFile string `mapstructure:"roster_file"` // optional YAML roster
	ReportDir  string `mapstructure:"report_dir"`  // defaults to <data_dir>/reports
}

// DefaultDataDir returns ~/.slt.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".slt"), nil
}

// ResolveDataDir returns $SLT_DATA_DIR when set, otherwise ~/.slt.
func ResolveDataDir() (string, error) {
	if d := os.Getenv(EnvPrefix + "_DATA_DIR"); d != "" {
		return d, nil
	}
	return DefaultDataDir()
}

// Load reads configuration from defaults, an optional config.yaml in the data
// directory and SLT_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dataDir)
}

// LoadFrom is Load with an explicit default data directory.
func LoadFrom(dataDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("db_driver", "sqlite3")
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", LogFormatConsole)
	v.SetDefault("roster_file", "")
	v.SetDefault("report_dir", "")

	// The config file lives in the data directory, which env may override
	v.SetConfigFile(filepath.Join(v.GetString("data_dir"), "config.yaml"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "slt.db")
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = filepath.Join(cfg.DataDir, "reports")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3", "sqlite":
	default:
		return fmt.Errorf("db_driver must be \"sqlite3\" or \"sqlite\", got %q", c.DBDriver)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// ConfigPath returns the config file location inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// WriteDefault writes a config.yaml with the default settings into dataDir.
// An existing file is left untouched unless force is set.
func WriteDefault(dataDir string, force bool) (string, error) {
	path := ConfigPath(dataDir)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}

	v := viper.New()
	v.Set("db_driver", "sqlite3")
	v.Set("db_path", filepath.Join(dataDir, "slt.db"))
	v.Set("log_level", "warn")
	v.Set("log_format", LogFormatConsole)
	v.Set("roster_file", "")
	v.Set("report_dir", filepath.Join(dataDir, "reports"))
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
