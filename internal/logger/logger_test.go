package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json, debug bool
		level       zapcore.Level
	}{
		{json: false, debug: false, level: zapcore.InfoLevel},
		{json: true, debug: true, level: zapcore.DebugLevel},
	} {
		logger, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("creating logger: %v", err)
		}
		if !logger.Core().Enabled(tc.level) {
			t.Fatalf("expected level %s to be enabled", tc.level)
		}
		if tc.level == zapcore.InfoLevel && logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug to be disabled")
		}
	}
}

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  area  ", Value: "  Core  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "area" || fields[0].String != "Core" {
		t.Fatalf("unexpected area field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestWithCategory(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCategory(zap.New(core), "Portal/Webpart").Info("test log")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldArea] != "Portal" {
		t.Fatalf("expected area Portal, got %q", ctx[FieldArea])
	}
	if ctx[FieldCategory] != "Webpart" {
		t.Fatalf("expected category Webpart, got %q", ctx[FieldCategory])
	}

	if fields := CategoryFields("", ""); len(fields) != 0 {
		t.Fatalf("expected empty fields, got %d", len(fields))
	}
}
