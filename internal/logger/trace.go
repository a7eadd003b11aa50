package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultAreaName       = "Tarento Core Framework"
	DefaultCategoryName   = "Tarento SharePoint Common Library"
	CategoryPathSeparator = "/"
	DefaultEventID        = 0
)

// DefaultAreaCategory is the "Area/Category" path used for internal messages.
func DefaultAreaCategory() string {
	return DefaultAreaName + CategoryPathSeparator + DefaultCategoryName
}

// SplitCategory splits an "Area/Category" path. A path without a separator is
// a category of the default area.
func SplitCategory(path string) (area, category string) {
	area, category, found := strings.Cut(strings.TrimSpace(path), CategoryPathSeparator)
	if !found {
		return DefaultAreaName, area
	}
	return strings.TrimSpace(area), strings.TrimSpace(category)
}

// Severity is the trace severity scale of the diagnostics sink.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityUnexpected
	SeverityMonitorable
	SeverityHigh
	SeverityMedium
	SeverityVerbose
	SeverityVerboseEx
)

var severityNames = map[Severity]string{
	SeverityNone:        "none",
	SeverityUnexpected:  "unexpected",
	SeverityMonitorable: "monitorable",
	SeverityHigh:        "high",
	SeverityMedium:      "medium",
	SeverityVerbose:     "verbose",
	SeverityVerboseEx:   "verboseex",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// Level maps the severity onto a zap level.
func (s Severity) Level() zapcore.Level {
	switch s {
	case SeverityUnexpected:
		return zapcore.ErrorLevel
	case SeverityMonitorable, SeverityHigh:
		return zapcore.WarnLevel
	case SeverityVerbose, SeverityVerboseEx:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Tracer writes diagnostic traces tagged with an event id, severity and category.
type Tracer struct {
	logger *zap.Logger
}

// NewTracer returns a tracer writing to logger. A nil logger discards traces.
func NewTracer(logger *zap.Logger) *Tracer {
	return &Tracer{logger: WithFields(logger)}
}

// Trace writes message with medium severity.
func (t *Tracer) Trace(message string, eventID int, category string) {
	t.TraceSeverity(message, eventID, SeverityMedium, category)
}

// TraceSeverity writes message with the given severity.
// SeverityNone traces are dropped.
func (t *Tracer) TraceSeverity(message string, eventID int, severity Severity, category string) {
	if severity == SeverityNone {
		return
	}

	fields := append(
		CategoryFields(SplitCategory(category)),
		zap.Int(FieldEventID, eventID),
		zap.String(FieldSeverity, severity.String()),
	)

	if ce := t.logger.Check(severity.Level(), message); ce != nil {
		ce.Write(fields...)
	}
}
