package argscan

import (
	"io"
	"log/slog"
	"os"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// config holds the diagnostic configuration for an [Args].
type config struct {
	output io.Writer
	exit   func(int)
	logger *slog.Logger
	color  ColorMode
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: diagnostics to [os.Stderr], termination via [os.Exit],
// [ColorAuto], and a discard logger.
func WithDefaults() Option {
	return func(c config) config {
		c.output = os.Stderr
		c.exit = os.Exit
		c.logger = slog.New(slog.DiscardHandler)
		c.color = ColorAuto

		return c
	}
}

// WithOutput returns a functional option that sets the [io.Writer] that
// receives fatal diagnostics.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithExit returns a functional option that sets the function called with a
// failure status after a fatal diagnostic has been written.
//
// The function must not return. The default is [os.Exit]; tests substitute a
// function that records the status and panics, or simply records it and lets
// the reporter's trailing panic surface the classified error.
// If nil is provided, [os.Exit] is used instead.
func WithExit(exit func(code int)) Option {
	return func(c config) config {
		if exit == nil {
			exit = os.Exit
		}

		c.exit = exit

		return c
	}
}

// WithLogger returns a functional option that sets the [slog.Logger] used to
// record flag lookups and fatal conditions.
// If nil is provided, log records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c config) config {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}

		c.logger = logger

		return c
	}
}

// WithColor returns a functional option that controls ANSI color in fatal
// diagnostics. See [ColorMode].
func WithColor(mode ColorMode) Option {
	return func(c config) config {
		c.color = mode

		return c
	}
}
