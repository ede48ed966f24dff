package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

// NewTracer creates a Jaeger tracer reporting to the given agent and sets it
// as the global tracer. The returned closer flushes buffered spans.
func NewTracer(serviceName, jaegerHost, jaegerPort string, logger *zap.Logger) (opentracing.Tracer, io.Closer, error) {
	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:           true,
			LocalAgentHostPort: fmt.Sprintf("%s:%s", jaegerHost, jaegerPort),
		},
	}
	tracer, closer, err := cfg.NewTracer(
		config.Logger(&jaegerLoggerAdapter{logger: logger}),
		config.Metrics(metrics.NullFactory),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Jaeger tracer: %w", err)
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer, nil
}

// jaegerLoggerAdapter adapts zap logger to Jaeger logger interface
type jaegerLoggerAdapter struct {
	logger *zap.Logger
}

func (l *jaegerLoggerAdapter) Error(msg string) {
	l.logger.Error(msg)
}

func (l *jaegerLoggerAdapter) Infof(msg string, args ...interface{}) {
	l.logger.Sugar().Infof(msg, args...)
}
