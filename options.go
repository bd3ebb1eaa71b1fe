package rubix

import "github.com/rs/zerolog"

// Option configures a Tracker.
type Option func(*config)

type config struct {
	history bool
	logger  zerolog.Logger
	onMove  func(Move, *Cube)
}

func defaultConfig() *config {
	return &config{
		history: true,
		logger:  zerolog.Nop(),
	}
}

// WithHistory enables or disables move history.
// When enabled (default), applied moves are kept for History and Undo.
// Disable this for long sessions to reduce memory usage.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}

// WithLogger sets the logger used for per-move debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOnMove registers a callback fired after each applied move with a
// snapshot of the resulting cube. It runs while the tracker is locked and
// must not call back into it.
func WithOnMove(fn func(Move, *Cube)) Option {
	return func(c *config) {
		c.onMove = fn
	}
}
