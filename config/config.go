package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"hybrid-nlu-gateway/internal/model"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Gemini GeminiConfig
	Rasa   RasaConfig
	NLU    NLUConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the generative-model API client.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
}

// RasaConfig configures the dialogue-engine client.
type RasaConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// NLUConfig configures the hybrid resolution layer.
type NLUConfig struct {
	RetryAttempts    int
	RetryDelay       time.Duration
	CacheSize        int
	CacheTTL         time.Duration
	EmergencyPhrases []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")
	cfg.Gemini.Timeout = parseDuration(viper.GetString("gemini.timeout"), 30*time.Second)
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if m := viper.GetString("gemini_model"); m != "" {
		cfg.Gemini.Model = m
	}

	// Rasa
	cfg.Rasa.WebhookURL = viper.GetString("rasa.webhook_url")
	cfg.Rasa.Timeout = parseDuration(viper.GetString("rasa.timeout"), 10*time.Second)
	if u := viper.GetString("rasa_url"); u != "" {
		cfg.Rasa.WebhookURL = u
	}

	// NLU resolution layer
	cfg.NLU.RetryAttempts = viper.GetInt("nlu.retry_attempts")
	cfg.NLU.RetryDelay = parseDuration(viper.GetString("nlu.retry_delay"), 300*time.Millisecond)
	cfg.NLU.CacheSize = viper.GetInt("nlu.cache_size")
	cfg.NLU.CacheTTL = parseDuration(viper.GetString("nlu.cache_ttl"), 5*time.Minute)
	cfg.NLU.EmergencyPhrases = splitList(viper.GetStringSlice("nlu.emergency_phrases"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fails fast on the truly unrecoverable startup errors; everything
// else is recovered per request.
func (c *Config) validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY)")
	}
	if c.Rasa.WebhookURL == "" {
		return fmt.Errorf("rasa.webhook_url is required (set RASA_URL)")
	}
	if c.NLU.RetryAttempts < 0 {
		return fmt.Errorf("nlu.retry_attempts must be >= 0")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.temperature", 0.1)
	viper.SetDefault("gemini.max_output_tokens", 512)
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("rasa.webhook_url", "http://localhost:5005/webhooks/rest/webhook")
	viper.SetDefault("rasa.timeout", "10s")
	viper.SetDefault("nlu.retry_attempts", 2)
	viper.SetDefault("nlu.retry_delay", "300ms")
	viper.SetDefault("nlu.cache_size", 256)
	viper.SetDefault("nlu.cache_ttl", "5m")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// splitList also accepts a single comma-separated string, since env
// overrides cannot express YAML lists.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
