package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Register adds the instance to the registry and keeps reporting its healthy
// state until ctx is done. The returned function deregisters it.
func Register(ctx context.Context, registry discovery.Registry, serviceName string, port int, logger *zap.Logger) (func(), error) {
	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", port)); err != nil {
		return nil, err
	}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					logger.Warn("Failed to report healthy state", zap.Error(err))
				}
			}
		}
	}()
	return func() {
		if err := registry.Deregister(context.Background(), instanceID, serviceName); err != nil {
			logger.Warn("Failed to deregister", zap.Error(err))
		}
	}, nil
}

// Metrics creates a root tally scope exported in prometheus format.
func Metrics(serviceName string) (tally.Scope, http.Handler, io.Closer) {
	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:           map[string]string{"service": serviceName},
		CachedReporter: reporter,
		Separator:      prometheus.DefaultSeparator,
	}, 10*time.Second)
	return scope, reporter.HTTPHandler(), closer
}

// Serve runs the gRPC server and the optional HTTP servers until SIGINT or
// SIGTERM, then stops them gracefully and calls cancel.
func Serve(logger *zap.Logger, cancel context.CancelFunc, srv *grpc.Server, lis net.Listener, httpServers ...*http.Server) error {
	for _, hs := range httpServers {
		go func(hs *http.Server) {
			logger.Info("Starting HTTP server", zap.String("addr", hs.Addr))
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server error", zap.String("addr", hs.Addr), zap.Error(err))
			}
		}(hs)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		logger.Info("Received signal, attempting graceful shutdown", zap.Any("signal", s))
		cancel()
		for _, hs := range httpServers {
			ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			if err := hs.Shutdown(ctx); err != nil {
				logger.Warn("HTTP server shutdown", zap.Error(err))
			}
			stop()
		}
		srv.GracefulStop()
		logger.Info("Gracefully stopped the gRPC server")
	}()
	logger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
	if err := srv.Serve(lis); err != nil {
		return err
	}
	wg.Wait()
	return nil
}
