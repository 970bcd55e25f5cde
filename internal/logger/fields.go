package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log field keys shared by the commands and the analysis pipeline.
const (
	FieldRunID    = "run_id"
	FieldDocument = "document"
	FieldRole     = "role"
	FieldStage    = "stage"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the fields to the logger, defaulting to a no-op logger
// when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// DocumentFields describes the document under analysis and its detected role.
// Empty values are skipped.
func DocumentFields(name, role string) []zap.Field {
	return StringFields(
		StringField{Key: FieldDocument, Value: name},
		StringField{Key: FieldRole, Value: role},
	)
}

// WithDocument attaches the document fields to the logger.
func WithDocument(logger *zap.Logger, name, role string) *zap.Logger {
	return WithFields(logger, DocumentFields(name, role)...)
}
