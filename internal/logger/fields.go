package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldArea is the structured log field key for the diagnostics area.
	FieldArea = "area"
	// FieldCategory is the structured log field key for the diagnostics category.
	FieldCategory = "category"
	// FieldEventID is the structured log field key for the trace event id.
	FieldEventID = "event_id"
	// FieldSeverity is the structured log field key for the trace severity.
	FieldSeverity = "severity"
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

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CategoryFields returns the area and category fields. Empty values are skipped.
func CategoryFields(area, category string) []zap.Field {
	return StringFields(
		StringField{Key: FieldArea, Value: area},
		StringField{Key: FieldCategory, Value: category},
	)
}

// WithCategory attaches the fields of an "Area/Category" path to the logger.
func WithCategory(logger *zap.Logger, path string) *zap.Logger {
	area, category := SplitCategory(path)
	return WithFields(logger, CategoryFields(area, category)...)
}
