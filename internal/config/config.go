// Package config loads the service configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BerylCAtieno/careerpath-agent/internal/llm"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		// BaseURL is advertised in the agent card. Empty derives it from the port.
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`
	LLM llm.Config `yaml:"llm"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	Session struct {
		IdleTTL       time.Duration `yaml:"idle_ttl"`
		SweepInterval time.Duration `yaml:"sweep_interval"`
	} `yaml:"session"`
	PDF struct {
		ChromePath string        `yaml:"chrome_path"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"pdf"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.LLM = llm.DefaultConfig()
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Output = "stdout"
	cfg.Session.IdleTTL = 2 * time.Hour
	cfg.Session.SweepInterval = 10 * time.Minute
	cfg.PDF.Timeout = 30 * time.Second
	return &cfg
}

// Load reads .env, then the YAML file at path (skipped when path is empty),
// then environment overrides. Values missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	// A missing .env is fine; the process environment is used as is.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	if provider := os.Getenv("CAREERPATH_PROVIDER"); provider != "" {
		c.LLM.Provider = llm.Provider(strings.ToLower(provider))
	}
	if model := os.Getenv("CAREERPATH_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// PublicURL is the base URL clients use to reach the server.
func (c *Config) PublicURL() string {
	if c.Server.BaseURL != "" {
		return strings.TrimRight(c.Server.BaseURL, "/")
	}
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.Server.Port)
}

// Validate checks the loaded values. The API key is not required here.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port must be within 1-65535, got %d", c.Server.Port))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Output) {
	case "", "stdout":
	case "file", "both":
		if c.Log.FilePath == "" {
			errs = append(errs, fmt.Errorf("log file_path is required for output %q", c.Log.Output))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown log output %q", c.Log.Output))
	}
	if c.Session.IdleTTL <= 0 {
		errs = append(errs, errors.New("session idle_ttl must be positive"))
	}
	if c.Session.SweepInterval <= 0 {
		errs = append(errs, errors.New("session sweep_interval must be positive"))
	}
	return errors.Join(errs...)
}
