package main

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/bootstrap"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/discovery/consul"
	"github.com/abhishek622/streetsmart/pkg/tracing"
	"github.com/abhishek622/streetsmart/shop/internal/controller/shop"
	approvalgateway "github.com/abhishek622/streetsmart/shop/internal/gateway/approval/grpc"
	grpchandler "github.com/abhishek622/streetsmart/shop/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/shop/internal/repository/memory"
	"github.com/abhishek622/streetsmart/shop/internal/repository/mysql"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const serviceName = "shop"

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
	logger.Info("Starting the shop service", zap.Int("port", port))

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init shop service registry", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, closer, err := tracing.NewTracer(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer closer.Close()

	deregister, err := bootstrap.Register(ctx, registry, serviceName, port, logger)
	if err != nil {
		logger.Fatal("Failed to register the shop service", zap.Error(err))
	}
	defer deregister()

	approvals := approvalgateway.New(registry, nil, cfg.Coordinator.CallTimeout)
	var ctrl *shop.Controller
	if cfg.MySQL.DSN != "" {
		repo, err := mysql.Open(cfg.MySQL.DSN)
		if err != nil {
			logger.Fatal("Failed to open MySQL repository", zap.Error(err))
		}
		defer repo.Close()
		ctrl = shop.New(repo, approvals, logger)
	} else {
		ctrl = shop.New(memory.New(), approvals, logger)
	}
	h := grpchandler.New(ctrl)

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%v", port))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}
	verifier := auth.NewVerifier(cfg.Auth.SecretProvider())
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(auth.UnaryServerInterceptor(verifier,
			api.ShopService_ShopExists_FullMethodName,
			api.ShopService_GetBasicInfo_FullMethodName,
		)),
	)
	reflection.Register(srv)
	api.RegisterShopServiceServer(srv, h)

	if err := bootstrap.Serve(logger, cancel, srv, lis); err != nil {
		logger.Fatal("Failed to serve gRPC server", zap.Error(err))
	}
}
