package strands

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults applied to runtime requests that do
// not pin a model themselves.
type Config struct {
	ModelID string `env:"MODEL_ID" envDefault:"us.anthropic.claude-3-5-sonnet-20241022-v2:0"`
	Region  string `env:"AWS_REGION" envDefault:"us-east-1"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}
