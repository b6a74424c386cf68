package isolate

type options struct {
	logger *Logger
}

// Option configures Engine construction behavior.
//
// Options exist to keep the constructor surface small as knobs get added;
// the Configuration struct stays strictly algorithmic.
type Option func(*options)

// WithLogger configures the logger used for debug diagnostics of a run
// (chosen cell size, grid dimensions, scan outcome).
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
