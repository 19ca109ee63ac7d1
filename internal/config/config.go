package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

const (
	defaultInterval       = 60 * time.Second
	defaultStaleAfter     = 10 * time.Minute
	defaultPingerInterval = 10 * time.Second
)

type Config struct {
	KubeConfig      string
	KubeMaster      string
	LogLevel        string
	LogFormat       string
	HTTPPort        string
	MetricsPort     string
	Namespaces      []string
	AppLabel        string
	ServerlessLabel string
	ProdLabel       string
	Interval        time.Duration
	Schedule        string
	ScheduleTZ      string
	StaleAfter      time.Duration
	PingerInterval  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:      getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:      getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:        getEnvOrDefault(envKeyLogLevel, "info"),
		LogFormat:       getEnvOrDefault(envKeyLogFormat, "json"),
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, "9090"),
		Namespaces:      splitList(os.Getenv(envKeyNamespaces)),
		AppLabel:        getEnvOrDefault(envKeyAppLabel, deploytime.DefaultAppLabel),
		ServerlessLabel: getEnvOrDefault(envKeyServerlessLabel, deploytime.DefaultServerlessLabel),
		ProdLabel:       os.Getenv(envKeyProdLabel),
		Schedule:        os.Getenv(envKeySchedule),
		ScheduleTZ:      os.Getenv(envKeyScheduleTZ),
	}

	var err error

	cfg.Interval, err = getDuration(envKeyInterval, defaultInterval, envMinInterval)
	if err != nil {
		return nil, err
	}

	cfg.StaleAfter, err = getDuration(envKeyStaleAfter, defaultStaleAfter, envMinStaleAfter)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval, err = getDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LabelKeys returns the label keys the generator correlates by.
func (c *Config) LabelKeys() deploytime.LabelKeys {
	return deploytime.LabelKeys{
		App:        c.AppLabel,
		Serverless: c.ServerlessLabel,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvWithFallback(key, fallbackKey string) string {
	value := os.Getenv(key)
	if value == "" {
		return os.Getenv(fallbackKey)
	}

	return value
}

func getDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("%s must be at least %s, got %s", key, minValue, value)
	}

	return value, nil
}

// splitList splits a comma separated list, trimming spaces and dropping empty items.
func splitList(raw string) []string {
	var items []string

	for item := range strings.SplitSeq(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
