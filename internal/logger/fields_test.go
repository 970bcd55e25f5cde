package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  document  ", Value: "  cv.pdf  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "document" || fields[0].String != "cv.pdf" {
		t.Fatalf("unexpected document field: %+v", fields[0])
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

	enriched.Info("another log")
}

func TestDocumentFields(t *testing.T) {
	fields := DocumentFields("  cv.pdf  ", "Data Scientist")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldDocument || fields[0].String != "cv.pdf" {
		t.Fatalf("unexpected document field: %+v", fields[0])
	}

	if fields[1].Key != FieldRole || fields[1].String != "Data Scientist" {
		t.Fatalf("unexpected role field: %+v", fields[1])
	}

	if empty := DocumentFields("", ""); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithDocument(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithDocument(zap.New(core), "cv.pdf", "Other Role").Info("scored")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldDocument] != "cv.pdf" || ctx[FieldRole] != "Other Role" {
		t.Fatalf("unexpected context %v", ctx)
	}

	WithDocument(nil, "cv.pdf", "").Info("no panic")
}
