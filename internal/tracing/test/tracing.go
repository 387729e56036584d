package test

import (
	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/tracing"
)

// Tracer returns a noop tracer for use in tests
func Tracer(log *logger.Logger) *tracing.Tracer {
	return tracing.Noop(log, "test")
}
