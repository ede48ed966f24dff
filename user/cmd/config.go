package main

import "github.com/abhishek622/streetsmart/internal/bootstrap"

type config struct {
	API              bootstrap.APIConfig       `yaml:"api"`
	ServiceDiscovery bootstrap.DiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           bootstrap.JaegerConfig    `yaml:"jaeger"`
	MySQL            bootstrap.MySQLConfig     `yaml:"mysql"`
	Auth             bootstrap.AuthConfig      `yaml:"auth"`
}
