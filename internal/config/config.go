package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"CHECKERS_LOG_LEVEL" env-default:"info"`
	Ruleset     string `yaml:"ruleset" env:"CHECKERS_RULESET" env-default:"extended"`
	HistoryFile string `yaml:"history-file" env:"CHECKERS_HISTORY_FILE" env-default:".checkers_history"`
	Redis       Redis  `yaml:"redis"`
}

// Redis - move event publishing. Publishing is off when Host is empty.
type Redis struct {
	Host    string `yaml:"host" env:"CHECKERS_REDIS_HOST"`
	Port    string `yaml:"port" env:"CHECKERS_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"CHECKERS_REDIS_CHANNEL" env-default:"checkers:moves"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
