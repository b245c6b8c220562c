package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is the structured log field type used across the codebase.
type Field = zap.Field

// String creates a string field.
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return zap.Float64(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Any creates a field with an arbitrary value.
func Any(key string, value interface{}) Field {
	return zap.Any(key, value)
}

// Err creates an error field.
func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField creates an error field (alias kept for call-site symmetry).
func ErrorField(err error) Field {
	return zap.Error(err)
}
