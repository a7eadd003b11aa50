package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSplitCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, area, category string
	}{
		{path: "Portal/Webpart", area: "Portal", category: "Webpart"},
		{path: "Webpart", area: DefaultAreaName, category: "Webpart"},
		{path: DefaultAreaCategory(), area: DefaultAreaName, category: DefaultCategoryName},
		{path: " Portal / Search ", area: "Portal", category: "Search"},
	}

	for _, tt := range tests {
		area, category := SplitCategory(tt.path)
		if area != tt.area || category != tt.category {
			t.Fatalf("%q: expected %q/%q, got %q/%q", tt.path, tt.area, tt.category, area, category)
		}
	}
}

func TestTracer(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	tracer := NewTracer(zap.New(core))

	tracer.Trace("This is for test", 100, "Webpart")
	tracer.TraceSeverity("job failed", 103, SeverityHigh, DefaultAreaCategory())
	tracer.TraceSeverity("details", 103, SeverityVerbose, DefaultAreaCategory())
	tracer.TraceSeverity("dropped", 1, SeverityNone, "Webpart")

	entries := observed.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	expectLevels := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.DebugLevel}
	for i, entry := range entries {
		if entry.Level != expectLevels[i] {
			t.Fatalf("entry %d: expected level %s, got %s", i, expectLevels[i], entry.Level)
		}
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldEventID] != int64(100) {
		t.Fatalf("expected event id 100, got %v", ctx[FieldEventID])
	}
	if ctx[FieldSeverity] != "medium" {
		t.Fatalf("expected medium severity, got %v", ctx[FieldSeverity])
	}
	if ctx[FieldArea] != DefaultAreaName || ctx[FieldCategory] != "Webpart" {
		t.Fatalf("unexpected category fields: %v", ctx)
	}

	// A nil logger discards traces without panicking.
	NewTracer(nil).Trace("ignored", 0, "Webpart")
}

func TestSeverityLevel(t *testing.T) {
	t.Parallel()

	if SeverityUnexpected.Level() != zapcore.ErrorLevel {
		t.Fatalf("expected unexpected severity to map to error")
	}
	if SeverityMonitorable.Level() != zapcore.WarnLevel {
		t.Fatalf("expected monitorable severity to map to warn")
	}
	if SeverityVerboseEx.String() != "verboseex" {
		t.Fatalf("unexpected name %q", SeverityVerboseEx.String())
	}
	if Severity(42).String() != "unknown" {
		t.Fatalf("expected unknown severity name")
	}
}
