package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"` // "development" or "production"
	} `yaml:"server"`

	Cors struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Perplexity PerplexityConfig `yaml:"perplexity"`
}

type PerplexityConfig struct {
	ApiKey         string  `yaml:"apiKey"`
	Model          string  `yaml:"model"`
	TimeoutSeconds int     `yaml:"timeoutSeconds"`
	MaxRetries     int     `yaml:"maxRetries"`
	Temperature    float32 `yaml:"temperature"`
}

// LoadConfig reads the configuration file. The Perplexity API key may also be
// supplied through the PERPLEXITY_API_KEY environment variable, which takes
// precedence over the file so the key never has to live on disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if key := os.Getenv("PERPLEXITY_API_KEY"); key != "" {
		cfg.Perplexity.ApiKey = key
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}

	return &cfg, nil
}
