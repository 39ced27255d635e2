package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ConfigFile is looked up relative to the XDG config directories.
const ConfigFile = "tictactoe/config.yml"

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Glyphs   Glyphs `yaml:"glyphs"`
}

type Glyphs struct {
	First  string `yaml:"first" env:"GLYPH_FIRST" env-default:"❌"`
	Second string `yaml:"second" env:"GLYPH_SECOND" env-default:"⭕"`
	Empty  string `yaml:"empty" env:"GLYPH_EMPTY"`
}

// Load - reads .env if present, then the config file at path or, when path is empty,
// the first tictactoe/config.yml found in the XDG config directories.
// Without any file the configuration comes from the environment alone.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	if path == "" {
		if found, err := xdg.SearchConfigFile(ConfigFile); err == nil {
			path = found
		}
	}

	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Addr() string {
	return ":" + that.HTTPPort
}
