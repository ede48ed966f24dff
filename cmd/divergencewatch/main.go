// Command divergencewatch logs the divergence reports published by the
// coordinators after a partial success.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhishek622/streetsmart/pkg/divergence"
	"github.com/abhishek622/streetsmart/pkg/divergence/kafka"
	"go.uber.org/zap"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka bootstrap servers")
	topic := flag.String("topic", "divergence", "divergence report topic")
	group := flag.String("group", "divergencewatch", "consumer group id")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	w, err := kafka.NewWatcher(*brokers, *group, *topic, logger)
	if err != nil {
		logger.Fatal("Failed to create divergence watcher", zap.Error(err))
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching divergence reports", zap.String("topic", *topic))
	err = w.Watch(ctx, func(r divergence.Report) error {
		logger.Warn("Relationship divergence",
			zap.String("operation", r.Operation),
			zap.String("resourceId", r.ResourceID),
			zap.Strings("completed", r.Completed),
			zap.String("failed", r.Failed),
			zap.Strings("skipped", r.Skipped),
			zap.String("error", r.Error),
			zap.Time("occurredAt", r.OccurredAt),
		)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Divergence watcher stopped", zap.Error(err))
		os.Exit(1)
	}
}
