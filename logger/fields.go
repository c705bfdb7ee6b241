package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across dtsgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
	FieldHint  = "hint"

	// Counts and sizes
	FieldCount  = "count"
	FieldSize   = "size"
	FieldGroups = "groups"

	// Files and paths
	FieldFile    = "file"
	FieldPattern = "pattern"
	FieldOutput  = "output"

	// Type definitions
	FieldName      = "name"
	FieldNamespace = "namespace"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("typedef.watch"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	fileLogger := logger.ChildLogger(baseLogger, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
