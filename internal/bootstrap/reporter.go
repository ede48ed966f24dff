package bootstrap

import (
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/divergence/kafka"
	"go.uber.org/zap"
)

// DivergenceReporter returns the Kafka reporter configured by cfg, or a nil
// reporter when no brokers are set. The returned function flushes it.
func DivergenceReporter(cfg KafkaConfig, logger *zap.Logger) (consistency.Reporter, func(), error) {
	if cfg.Brokers == "" {
		logger.Info("Divergence reporting disabled, partial successes are only logged")
		return nil, func() {}, nil
	}
	topic := cfg.Topic
	if topic == "" {
		topic = "divergence"
	}
	r, err := kafka.NewReporter(cfg.Brokers, topic, logger)
	if err != nil {
		return nil, nil, err
	}
	return r, r.Close, nil
}
