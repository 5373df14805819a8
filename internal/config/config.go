// Package config loads process-wide configuration from the environment.
// The API key is consumed only by the lint path; the alignment engine
// never reads configuration ambiently.
package config

import (
	"github.com/joeshaw/envdecode"
)

// Config holds the process configuration. Defaults can be loaded via
// envdecode struct tags.
type Config struct {
	// OpenRouterAPIKey authenticates the language-model delegate. When
	// empty the lint tool reports an error on every call; compare is
	// unaffected. ENV: OPENROUTER_API_KEY
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`

	// Model names the OpenRouter model the lint tool delegates to.
	// ENV: DOCLINT_MODEL
	Model string `env:"DOCLINT_MODEL,default=anthropic/claude-3.5-sonnet"`

	// LogJSON switches log output to JSON format. ENV: DOCLINT_LOG_JSON
	LogJSON bool `env:"DOCLINT_LOG_JSON,default=false"`
}

// Load populates Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, err
	}
	return cfg, nil
}
