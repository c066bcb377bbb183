package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"player", "Brian Lara", 7, 55, "dismissal"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "player" || attrs[0].Value.AsString() != "Brian Lara" {
		t.Fatalf("unexpected player attribute: %v", attrs[0])
	}
	if attrs[1].Key != "arg_1" || attrs[1].Value.AsInt64() != 55 {
		t.Fatalf("non-string key should be named by position: %v", attrs[1])
	}
	if attrs[2].Key != "dismissal" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("trailing key should be empty: %v", attrs[2])
	}
}

func TestLogValue(t *testing.T) {
	if got := logValue(cricketer.Int(131)); got.AsInt64() != 131 {
		t.Fatalf("expected counter to be dereferenced, got %v", got)
	}
	var unknown *int
	if got := logValue(unknown); got.Kind() != otellog.KindEmpty {
		t.Fatalf("expected unknown counter to be empty, got %s", got.Kind())
	}
	if got := logValue(cricketer.RoleBowler); got.AsString() != "Bowler" {
		t.Fatalf("expected role to render as its name, got %v", got)
	}
	if got := logValue(errors.New("cricketer not found: Zzz")); got.AsString() != "cricketer not found: Zzz" {
		t.Fatalf("unexpected error value: %v", got)
	}
	if got := logValue([]string{"Australia", "India"}); got.Kind() != otellog.KindSlice || len(got.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %v", got)
	}
	if got := logValue(1500 * time.Millisecond); got.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %v", got)
	}
}

func TestBuildOTelLogRecord(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	record := buildOTelLogRecord(now, logging.LevelWarn, "cricketer not found", []any{"name", "Zzz"})

	if record.Severity() != otellog.SeverityWarn || record.SeverityText() != "WARN" {
		t.Fatalf("unexpected severity %v %q", record.Severity(), record.SeverityText())
	}
	if record.Body().AsString() != "cricketer not found" || !record.Timestamp().Equal(now) {
		t.Fatalf("unexpected record body or timestamp")
	}
	if record.AttributesLen() != 1 {
		t.Fatalf("expected 1 attribute, got %d", record.AttributesLen())
	}
}

func TestSeverityOf(t *testing.T) {
	tests := map[logging.Level]otellog.Severity{
		logging.LevelDebug: otellog.SeverityDebug,
		logging.LevelInfo:  otellog.SeverityInfo,
		logging.LevelWarn:  otellog.SeverityWarn,
		logging.LevelError: otellog.SeverityError,
	}
	for level, want := range tests {
		if got := severityOf(level); got != want {
			t.Fatalf("%s mapped to %v, want %v", level, got, want)
		}
	}
}
