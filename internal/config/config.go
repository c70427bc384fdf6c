package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendFile, nil
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

const DefaultShareBaseURL = "https://vitrine.example.org/"

type Config struct {
	Storage       Backend             `mapstructure:"storage"`
	ShareBaseURL  string              `mapstructure:"share_base_url"`
	LogLevel      string              `mapstructure:"log_level"`
	ColorKeywords map[string][]string `mapstructure:"color_keywords"`
}

func Defaults() Config {
	return Config{
		Storage:      BackendFile,
		ShareBaseURL: DefaultShareBaseURL,
		LogLevel:     "warn",
	}
}

// Load reads the YAML file at path, layered over defaults and under
// VITRINE_* environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("VITRINE")
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("storage", string(def.Storage))
	v.SetDefault("share_base_url", def.ShareBaseURL)
	v.SetDefault("log_level", def.LogLevel)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("cannot access config file %q: %w", path, err)
		}
	}

	backend, err := ParseBackend(v.GetString("storage"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Storage:      backend,
		ShareBaseURL: v.GetString("share_base_url"),
		LogLevel:     v.GetString("log_level"),
	}
	if v.IsSet("color_keywords") {
		if err := v.UnmarshalKey("color_keywords", &cfg.ColorKeywords); err != nil {
			return Config{}, fmt.Errorf("invalid color_keywords: %w", err)
		}
	}
	return cfg, nil
}
