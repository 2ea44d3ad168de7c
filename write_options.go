package mdw

// WriteOption configures serialization behavior.
type WriteOption func(*writeConfig)

type writeConfig struct {
	wrapWidth  int
	looseLists bool
}

// WithWrapWidth soft-wraps paragraph bodies at the given column.
// Wrapping only ever replaces spaces between words, so escape pairs
// and inline delimiters are never split. Zero or negative disables
// wrapping.
func WithWrapWidth(width int) WriteOption {
	return func(cfg *writeConfig) {
		cfg.wrapWidth = width
	}
}

// WithLooseLists separates list items with a blank line.
func WithLooseLists(enabled bool) WriteOption {
	return func(cfg *writeConfig) {
		cfg.looseLists = enabled
	}
}
