// Package config loads quizdeck settings from defaults, an optional YAML
// file, a .env file and QUIZDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/quizdeck/internal/speech"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "QUIZDECK"

// Config holds application configuration.
type Config struct {
	Env      string        `mapstructure:"env"`  // "development" or "production"
	DB       string        `mapstructure:"db"`   // SQLite path; empty means the XDG default
	Seed     uint64        `mapstructure:"seed"` // 0 = random
	Log      Log           `mapstructure:"log"`
	Speech   speech.Config `mapstructure:"speech"`
	Flags    Flags         `mapstructure:"flags"`
	Datasets Datasets      `mapstructure:"datasets"`
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`  // "-" logs to stderr
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Flags configures the country flag deck.
type Flags struct {
	CDN  string `mapstructure:"cdn"`
	Size int    `mapstructure:"size"` // image width in pixels
	QR   bool   `mapstructure:"qr"`   // render a QR code of the image URL
}

// Datasets configures where quiz data is read from.
type Datasets struct {
	Dir string `mapstructure:"dir"` // overrides the built-in fixtures per file
}

// Production reports whether the production environment is selected.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// Options tweak how Load finds its inputs.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, config.yaml is looked
	// up in the working directory and $XDG_CONFIG_HOME/quizdeck.
	ConfigFile string
	// EnvFile is a dotenv file to load; missing files are ignored.
	EnvFile string
}

// New returns a viper instance with every default registered and the
// environment bound. Callers may bind command-line flags onto it before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("db", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.command", "espeak")
	v.SetDefault("speech.rate", 140)
	v.SetDefault("flags.cdn", "https://flagcdn.com")
	v.SetDefault("flags.size", 320)
	v.SetDefault("flags.qr", false)
	v.SetDefault("datasets.dir", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration into a Config using v, which should come from New.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "quizdeck"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// defaultLogFile returns $XDG_STATE_HOME/quizdeck/quizdeck.log, falling back
// to ~/.local/state.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "-"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "quizdeck", "quizdeck.log")
}
