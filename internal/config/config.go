package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ScoreboardMemory = "memory"
	ScoreboardRedis  = "redis"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Console    Console    `yaml:"console"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
	Redis      Redis      `yaml:"redis"`
}

// Console defaults must stay zero values: cleanenv applies env-default to zero fields after reading the file.
type Console struct {
	NoColor bool `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
}

type Scoreboard struct {
	Backend string        `yaml:"backend" env:"SCOREBOARD_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"SCOREBOARD_TTL" env-default:"1h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEnv - load configuration from environment variables and defaults only.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
