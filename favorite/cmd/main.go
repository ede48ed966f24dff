package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/favorite/internal/controller/favorite"
	grpchandler "github.com/abhishek622/streetsmart/favorite/internal/handler/grpc"
	httphandler "github.com/abhishek622/streetsmart/favorite/internal/handler/http"
	"github.com/abhishek622/streetsmart/favorite/internal/repository/memory"
	"github.com/abhishek622/streetsmart/favorite/internal/repository/mysql"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/abhishek622/streetsmart/internal/bootstrap"
	"github.com/abhishek622/streetsmart/internal/gateway"
	"github.com/abhishek622/streetsmart/internal/gateway/shop/cache"
	shopgateway "github.com/abhishek622/streetsmart/internal/gateway/shop/grpc"
	usergateway "github.com/abhishek622/streetsmart/internal/gateway/user/grpc"
	"github.com/abhishek622/streetsmart/internal/httputil"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery/consul"
	"github.com/abhishek622/streetsmart/pkg/tracing"
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const serviceName = "favorite"

func main() {
	configPath := flag.String("config", "configs/default.yaml", "configuration file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config
	if err := bootstrap.ReadConfig(*configPath, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	policy, err := model.ParseDuplicatePolicy(cfg.Favorites.DuplicatePolicy)
	if err != nil {
		logger.Fatal("Invalid favorites configuration", zap.Error(err))
	}
	port := cfg.API.Port
	logger.Info("Starting the favorite service", zap.Int("port", port), zap.String("duplicatePolicy", string(policy)))

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init favorite service registry", zap.Error(err))
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
		logger.Fatal("Failed to register the favorite service", zap.Error(err))
	}
	defer deregister()

	reporter, flush, err := bootstrap.DivergenceReporter(cfg.Kafka, logger)
	if err != nil {
		logger.Fatal("Failed to init divergence reporter", zap.Error(err))
	}
	defer flush()
	scope, metricsHandler, metricsCloser := bootstrap.Metrics(serviceName)
	defer metricsCloser.Close()

	users := usergateway.New(registry, nil, cfg.Coordinator.CallTimeout)
	var shops gateway.ShopStore = shopgateway.New(registry, nil, cfg.Coordinator.CallTimeout)
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		defer rdb.Close()
		shops = cache.New(shops, rdb, cfg.Redis.TTL, logger)
	}
	propagator := consistency.NewPropagator(logger, reporter)
	var ctrl *favorite.Controller
	if cfg.MySQL.DSN != "" {
		repo, err := mysql.Open(cfg.MySQL.DSN)
		if err != nil {
			logger.Fatal("Failed to open MySQL repository", zap.Error(err))
		}
		defer repo.Close()
		ctrl = favorite.New(repo, users, shops, propagator, policy, scope, logger)
	} else {
		ctrl = favorite.New(memory.New(), users, shops, propagator, policy, scope, logger)
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	httpServers := []*http.Server{
		{Addr: fmt.Sprintf("localhost:%d", cfg.API.HTTPPort), Handler: httputil.NewRouter(httphandler.New(ctrl))},
		{Addr: fmt.Sprintf("localhost:%d", cfg.API.MetricsPort), Handler: metricsMux},
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%v", port))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(ratelimit.UnaryServerInterceptor(bootstrap.NewLimiter(cfg.RateLimit))),
	)
	reflection.Register(srv)
	api.RegisterFavoriteServiceServer(srv, grpchandler.New(ctrl))

	if err := bootstrap.Serve(logger, cancel, srv, lis, httpServers...); err != nil {
		logger.Fatal("Failed to serve gRPC server", zap.Error(err))
	}
}
