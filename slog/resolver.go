package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docuri"
)

// Ensure LoggingResolver implements docuri.Resolver.
var _ docuri.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   docuri.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next docuri.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(pair docuri.SignaturePair) (uri string, ok bool) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve",
			"scala", pair.Scala.String(),
			"java", pair.Java.String(),
			"uri", uri,
			"found", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(pair)
}
