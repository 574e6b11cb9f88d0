package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"SHOGI_LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
	Script   string  `yaml:"script" env:"SHOGI_SCRIPT" env-default:""`
}

type Players struct {
	Blue string `yaml:"blue" env:"SHOGI_BLUE" env-default:"Blue"`
	Red  string `yaml:"red" env:"SHOGI_RED" env-default:"Red"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
