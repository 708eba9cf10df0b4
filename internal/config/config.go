package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded by a .env file.
type Config struct {
	Mode string `env:"APP_ENV" envDefault:"development"` // development | production
	Port string `env:"PORT" envDefault:"8000"`

	GroqKey     string `env:"GROQ_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel   string `env:"GROQ_MODEL" envDefault:"meta-llama/llama-4-scout-17b-16e-instruct"`

	HFToken        string `env:"HF_TOKEN"`
	HFTextGenURL   string `env:"HF_TEXT_GEN_URL" envDefault:"https://router.huggingface.co/hf-inference/models/mistralai/Mistral-7B-Instruct-v0.2"`
	HFSentimentURL string `env:"HF_SENTIMENT_URL" envDefault:"https://router.huggingface.co/hf-inference/models/cardiffnlp/twitter-roberta-base-sentiment"`
	HFMaxNewTokens int    `env:"HF_MAX_NEW_TOKENS" envDefault:"250"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"60s"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads envfile when it exists and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envfile string) (Config, error) {
	if envfile != "" {
		if _, err := os.Stat(envfile); err == nil {
			if err := godotenv.Load(envfile); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envfile, err)
			}
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.ProviderTimeout <= 0 {
		return errors.New("PROVIDER_TIMEOUT must be positive")
	}
	if c.HFMaxNewTokens <= 0 {
		return errors.New("HF_MAX_NEW_TOKENS must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Mode == "production"
}

func (c Config) Addr() string {
	return ":" + c.Port
}
