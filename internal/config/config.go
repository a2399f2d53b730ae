package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Storage  Storage `yaml:"storage"`
}

type Storage struct {
	// Type selects the persistence backend: "sqlite" (local file, the
	// default) or "redis" (shared leaderboard between machines).
	Type       string `yaml:"type" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path" env-default:"tictactoe.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
