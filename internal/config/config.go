package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Sheets     Sheets     `yaml:"sheets"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:"0.0.0.0:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_SERVER_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"120s"`
}

type Sheets struct {
	TTL           time.Duration `yaml:"ttl" env:"SHEETS_TTL" env-default:"12h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SHEETS_SWEEP_INTERVAL" env-default:"10m"`
	DefaultMonth  string        `yaml:"default_month" env:"SHEETS_DEFAULT_MONTH" env-default:"August"`
	Year          int           `yaml:"year" env:"SHEETS_YEAR" env-default:"2024"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	config, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %s: %v", configPath, err)
	}
	return config
}

// Load reads the YAML file at path and applies environment overrides. An
// empty path reads the environment only.
func Load(path string) (*Config, error) {
	var config Config
	if path == "" {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &config, nil
	}
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &config, nil
}
