package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/divergence"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

// Reporter publishes divergence reports to a Kafka topic.
type Reporter struct {
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

// NewReporter creates a new Kafka divergence reporter.
func NewReporter(addr string, topic string, logger *zap.Logger) (*Reporter, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": addr})
	if err != nil {
		return nil, err
	}
	r := &Reporter{producer: producer, topic: topic, logger: logger}
	go r.deliveryReports()
	return r, nil
}

func (r *Reporter) deliveryReports() {
	for e := range r.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			r.logger.Error("Divergence report delivery failed", zap.ByteString("key", m.Key), zap.Error(m.TopicPartition.Error))
		}
	}
}

// Report enqueues a report keyed by the resource id.
func (r *Reporter) Report(_ context.Context, e *consistency.PartialSuccessError) error {
	payload, err := json.Marshal(divergence.FromError(e, time.Now()))
	if err != nil {
		return err
	}
	return r.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &r.topic, Partition: kafka.PartitionAny},
		Key:            []byte(e.ResourceID),
		Value:          payload,
	}, nil)
}

// Close flushes outstanding reports and closes the producer.
func (r *Reporter) Close() {
	if remaining := r.producer.Flush(10_000); remaining != 0 {
		r.logger.Warn("Divergence reports not delivered", zap.Int("remaining", remaining))
	}
	r.producer.Close()
}

// Watcher consumes divergence reports.
type Watcher struct {
	consumer *kafka.Consumer
	logger   *zap.Logger
}

// NewWatcher creates a consumer subscribed to topic.
func NewWatcher(addr string, groupID string, topic string, logger *zap.Logger) (*Watcher, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	if err := consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		consumer.Close()
		return nil, err
	}
	return &Watcher{consumer: consumer, logger: logger}, nil
}

// Watch passes every decoded report to fn until ctx is done. Messages that do
// not decode are logged and skipped.
func (w *Watcher) Watch(ctx context.Context, fn func(divergence.Report) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		msg, err := w.consumer.ReadMessage(time.Second)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			return err
		}
		if err := w.handle(msg, fn); err != nil {
			return err
		}
	}
}

func (w *Watcher) handle(msg *kafka.Message, fn func(divergence.Report) error) error {
	var report divergence.Report
	if err := json.Unmarshal(msg.Value, &report); err != nil {
		w.logger.Warn("Skipping malformed divergence report",
			zap.ByteString("key", msg.Key), zap.String("offset", msg.TopicPartition.Offset.String()), zap.Error(err))
		return nil
	}
	return fn(report)
}

// Close closes the consumer.
func (w *Watcher) Close() error {
	return w.consumer.Close()
}
