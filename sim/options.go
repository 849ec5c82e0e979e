package sim

import "log/slog"

// Option configures a Run.
//
// Example:
//
//	path, err := sim.Run(env, p, 100, sim.WithStopBelowGround())
type Option func(*runOptions)

// runOptions holds optional configuration for Run.
type runOptions struct {
	logger          *slog.Logger
	stopBelowGround bool
}

// defaultOptions returns the default run options.
func defaultOptions() runOptions {
	return runOptions{
		logger: nil, // falls back to tuple.Logger()
	}
}

// WithLogger sets the logger for a single Run, overriding tuple.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *runOptions) {
		o.logger = l
	}
}

// WithStopBelowGround ends the run once a tick moves the projectile to
// y <= 0.
func WithStopBelowGround() Option {
	return func(o *runOptions) {
		o.stopBelowGround = true
	}
}
