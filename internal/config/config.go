package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Consumers depend on this interface so tests can supply their own values.
type Provider interface {
	GetAddr() string
	GetRedirectURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetIdentityProvider() string
	GetFirebase() Firebase
	GetSurreal() Surreal
	GetMemoryStorePath() string
	GetRateLimit() float64
}

// Firebase is the client configuration block of the hosted identity service.
// Only APIKey and Endpoint are used for requests; the rest is carried so the
// block can be supplied as-is.
type Firebase struct {
	APIKey            string `env:"API_KEY"`
	AuthDomain        string `env:"AUTH_DOMAIN"`
	ProjectID         string `env:"PROJECT_ID"`
	StorageBucket     string `env:"STORAGE_BUCKET"`
	MessagingSenderID string `env:"MESSAGING_SENDER_ID"`
	AppID             string `env:"APP_ID"`
	Endpoint          string `env:"ENDPOINT" envDefault:"https://identitytoolkit.googleapis.com/v1"`
}

// Surreal configures the SurrealDB record-access backend.
type Surreal struct {
	URL    string `env:"URL"`
	NS     string `env:"NS"`
	DB     string `env:"DB"`
	Access string `env:"ACCESS" envDefault:"account"`
}

// Config holds all configuration for the application.
type Config struct {
	Addr             string   `env:"APP_ADDR" envDefault:":8080"`
	RedirectURL      string   `env:"AUTH_REDIRECT_URL" envDefault:"http://localhost:8501"`
	SessionSecret    string   `env:"SESSION_SECRET,required,notEmpty"`
	LogFormat        string   `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"debug"`
	IdentityProvider string   `env:"IDENTITY_PROVIDER" envDefault:"memory"`
	Firebase         Firebase `envPrefix:"FIREBASE_"`
	Surreal          Surreal  `envPrefix:"SURREAL_"`
	MemoryStorePath  string   `env:"MEMORY_STORE_PATH"`
	RateLimit        float64  `env:"RATE_LIMIT" envDefault:"10"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.IdentityProvider {
	case "memory":
	case "firebase":
		if c.Firebase.APIKey == "" {
			return fmt.Errorf("identity provider is 'firebase' but FIREBASE_API_KEY is not set")
		}
	case "surreal":
		if c.Surreal.URL == "" || c.Surreal.NS == "" || c.Surreal.DB == "" {
			return fmt.Errorf("identity provider is 'surreal' but SURREAL_URL, SURREAL_NS or SURREAL_DB is not set")
		}
	default:
		return fmt.Errorf("unknown identity provider: %s", c.IdentityProvider)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	return nil
}

func (c *Config) GetAddr() string             { return c.Addr }
func (c *Config) GetRedirectURL() string      { return c.RedirectURL }
func (c *Config) GetSessionSecret() string    { return c.SessionSecret }
func (c *Config) GetLogFormat() string        { return c.LogFormat }
func (c *Config) GetLogLevel() string         { return c.LogLevel }
func (c *Config) GetIdentityProvider() string { return c.IdentityProvider }
func (c *Config) GetFirebase() Firebase       { return c.Firebase }
func (c *Config) GetSurreal() Surreal         { return c.Surreal }
func (c *Config) GetMemoryStorePath() string  { return c.MemoryStorePath }
func (c *Config) GetRateLimit() float64       { return c.RateLimit }
