// Package tracing wires up the Jaeger tracer used by every service.
package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

// NewTracer creates a Jaeger tracer reporting to the given agent, logging
// through the provided zap logger. The returned closer flushes outstanding
// spans on shutdown.
func NewTracer(serviceName, agentHost, agentPort string, logger *zap.Logger) (opentracing.Tracer, io.Closer, error) {
	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:           true,
			LocalAgentHostPort: fmt.Sprintf("%s:%s", agentHost, agentPort),
		},
	}

	tracer, closer, err := cfg.NewTracer(
		config.Logger(&zapAdapter{logger: logger}),
		config.Metrics(metrics.NullFactory),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Jaeger tracer: %w", err)
	}
	return tracer, closer, nil
}

// zapAdapter adapts a zap logger to the Jaeger logger interface.
type zapAdapter struct {
	logger *zap.Logger
}

func (l *zapAdapter) Error(msg string) {
	l.logger.Error(msg)
}

func (l *zapAdapter) Infof(msg string, args ...interface{}) {
	l.logger.Sugar().Infof(msg, args...)
}
