package region

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
)

// ErrInvalidInput is returned for negative dimensions or an origin outside the grid.
var ErrInvalidInput = errors.New("region: invalid input")

// Option configures a flood fill.
type Option func(*Options)

// Options holds the configurable parameters of a flood fill.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Origin is the start cell; defaults to (0,0).
	Origin grid.Point

	// Conn selects the expansion directions; defaults to grid.ConnForward.
	Conn grid.Connectivity

	// Logger receives Debug events; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options that start at (0,0), expand right and down,
// use a background context and log nothing.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Origin: grid.Point{},
		Conn:   grid.ConnForward,
		Logger: zap.NewNop(),
	}
}

// WithContext sets the context checked between flood-fill steps.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrigin sets the start cell.
func WithOrigin(p grid.Point) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithConnectivity selects the neighbor set used for expansion.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithLogger sets the logger for flood-fill events.
// Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
