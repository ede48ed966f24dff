package main

import (
	"time"

	"github.com/abhishek622/streetsmart/internal/bootstrap"
)

type config struct {
	API              bootstrap.APIConfig       `yaml:"api"`
	ServiceDiscovery bootstrap.DiscoveryConfig `yaml:"serviceDiscovery"`
	Auth             bootstrap.AuthConfig      `yaml:"auth"`
	Token            tokenConfig               `yaml:"token"`
	TLS              tlsConfig                 `yaml:"tls"`
}

type tokenConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// tlsConfig enables TLS when both files are set.
type tlsConfig struct {
	CertFile string `yaml:"certFile"`
	KeyFile  string `yaml:"keyFile"`
}
