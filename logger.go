package isolate

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with isolate-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRadius adds the isolation radius field to the logger.
func (l *Logger) WithRadius(radius float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("radius", radius),
	}
}

// LogPartition logs the space partition layout chosen for a run.
func (l *Logger) LogPartition(cellSize float64, nx, ny, nz int, neighbors int) {
	l.Debug("partition built",
		"cell_size", cellSize,
		"grid_x", nx,
		"grid_y", ny,
		"grid_z", nz,
		"cells", nx*ny*nz,
		"neighbor_offsets", neighbors,
	)
}

// LogScan logs the outcome of an isolation scan.
func (l *Logger) LogScan(points, nonIsolated int) {
	l.Debug("isolation scan completed",
		"points", points,
		"non_isolated", nonIsolated,
		"isolated", points-nonIsolated,
	)
}
