package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// redis (post store slot, sessions, visitor likes)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// tracing
	TracingEnabled bool   `toml:"tracing_enabled"`
	OTLPEndpoint   string `toml:"otlp_endpoint"`
	// rate limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	ChatRateLimitAllowedPerMin  int `toml:"chat_rate_limit_allowed_per_min"`
	// assistant generative language API
	AssistantAPIURL string `toml:"assistant_api_url"`
	// site
	SiteBaseURL   string `toml:"site_base_url"`
	WhatsAppPhone string `toml:"whatsapp_phone"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var configs Toml
	if _, err := toml.DecodeFile(path, &configs); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := configs.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("missing config section for env: %s", env)
	}

	return cfg, nil
}
