package main

import "github.com/abhishek622/streetsmart/internal/bootstrap"

type config struct {
	API              bootstrap.APIConfig         `yaml:"api"`
	ServiceDiscovery bootstrap.DiscoveryConfig   `yaml:"serviceDiscovery"`
	Jaeger           bootstrap.JaegerConfig      `yaml:"jaeger"`
	MySQL            bootstrap.MySQLConfig       `yaml:"mysql"`
	Coordinator      bootstrap.CoordinatorConfig `yaml:"coordinator"`
	RateLimit        bootstrap.RateLimitConfig   `yaml:"rateLimit"`
	Kafka            bootstrap.KafkaConfig       `yaml:"kafka"`
	Redis            bootstrap.RedisConfig       `yaml:"redis"`
	Favorites        favoritesConfig             `yaml:"favorites"`
}

type favoritesConfig struct {
	// DuplicatePolicy is "toggle" or "reject".
	DuplicatePolicy string `yaml:"duplicatePolicy"`
}
