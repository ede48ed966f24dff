// Package bootstrap holds the process wiring shared by the service binaries.
package bootstrap

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type APIConfig struct {
	Port        int `yaml:"port"`
	HTTPPort    int `yaml:"httpPort"`
	MetricsPort int `yaml:"metricsPort"`
}

type DiscoveryConfig struct {
	Consul ConsulConfig `yaml:"consul"`
}

type ConsulConfig struct {
	Address string `yaml:"address"`
}

type JaegerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// MySQLConfig selects the MySQL repository when DSN is set.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

type AuthConfig struct {
	Secret string `yaml:"secret"`
}

type CoordinatorConfig struct {
	CallTimeout time.Duration `yaml:"callTimeout"`
}

type RateLimitConfig struct {
	Limit int `yaml:"limit"`
	Burst int `yaml:"burst"`
}

// KafkaConfig enables divergence reporting when Brokers is set.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

// RedisConfig enables the shop name cache when Address is set.
type RedisConfig struct {
	Address string        `yaml:"address"`
	TTL     time.Duration `yaml:"ttl"`
}

// ReadConfig decodes the yaml file at path into v.
func ReadConfig(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open configuration: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("parse configuration: %w", err)
	}
	return nil
}

// SecretProvider returns a provider for the configured signing key.
func (c AuthConfig) SecretProvider() func() []byte {
	secret := []byte(c.Secret)
	return func() []byte { return secret }
}
