package wordsearch

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrInvalidInput is returned when the grid is malformed.
	ErrInvalidInput = errors.New("wordsearch: invalid input")

	// ErrNotFound is returned by Find when no path spells the target.
	ErrNotFound = errors.New("wordsearch: target not found")
)

// Option configures a search.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives Debug events; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets the context checked between search steps.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for search events.
// Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
