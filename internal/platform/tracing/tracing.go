// Package tracing opens cricviz spans and names the attributes they carry.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cricviz"

const (
	CommandKey          = attribute.Key("cricviz.command")
	PlayerKey           = attribute.Key("cricviz.player")
	RecordsKey          = attribute.Key("cricviz.records")
	ScorecardBattingKey = attribute.Key("cricviz.scorecard.batting")
	ScorecardBowlingKey = attribute.Key("cricviz.scorecard.bowling")
)

// StartCommand opens the root span for one CLI invocation.
func StartCommand(ctx context.Context, command string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	name := "cricviz"
	if command != "" {
		name += " " + command
	}
	attrs = append(attrs, CommandKey.String(command))
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// Start opens a child span. Without a valid parent in ctx it returns a non-recording
// span, so service calls made outside a command produce no orphan traces.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func Player(name string) attribute.KeyValue {
	return PlayerKey.String(name)
}

func Records(n int) attribute.KeyValue {
	return RecordsKey.Int(n)
}

func Scorecard(batting, bowling int) []attribute.KeyValue {
	return []attribute.KeyValue{
		ScorecardBattingKey.Int(batting),
		ScorecardBowlingKey.Int(bowling),
	}
}

// Fail records err on span and marks it failed. A nil err is ignored.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
