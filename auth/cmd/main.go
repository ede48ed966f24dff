package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"net"

	"github.com/abhishek622/streetsmart/api"
	grpchandler "github.com/abhishek622/streetsmart/auth/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/internal/bootstrap"
	"github.com/abhishek622/streetsmart/pkg/discovery/consul"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"
)

const serviceName = "auth"

func main() {
	configPath := flag.String("config", "configs/default.yaml", "configuration file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config
	if err := bootstrap.ReadConfig(*configPath, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	port := cfg.API.Port
	logger.Info("Starting the auth service", zap.Int("port", port))

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init auth service registry", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deregister, err := bootstrap.Register(ctx, registry, serviceName, port, logger)
	if err != nil {
		logger.Fatal("Failed to register the auth service", zap.Error(err))
	}
	defer deregister()

	var opts []grpc.ServerOption
	if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			logger.Fatal("Failed to load key pair", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(&tls.Config{Certificates: []tls.Certificate{cert}})))
	}
	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%v", port))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}

	h := grpchandler.New(cfg.Auth.SecretProvider(), cfg.Token.TTL)
	srv := grpc.NewServer(opts...)
	reflection.Register(srv)
	api.RegisterAuthServiceServer(srv, h)

	if err := bootstrap.Serve(logger, cancel, srv, lis); err != nil {
		logger.Fatal("Failed to serve gRPC server", zap.Error(err))
	}
}
