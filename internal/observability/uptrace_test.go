package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/cricviz/internal/config"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTelemetryDisabledReason(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: "UPTRACE_ENABLED=false"},
		{name: "blank dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "  "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := telemetryDisabledReason(tc.cfg); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInitUptrace_DisabledClearsMirrorAndLogsReason(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging.SetMirror(func(context.Context, logging.Level, string, ...any) {
		t.Fatalf("mirror should have been cleared")
	})
	t.Cleanup(func() { logging.SetMirror(nil) })

	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "", ServiceName: "cricviz", AppEnv: config.EnvDev}
	shutdown, err := InitUptrace(cfg, logging.FromZap(zap.New(core)))
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}

	entries := logs.FilterMessage("uptrace disabled").All()
	if len(entries) != 1 || entries[0].ContextMap()["reason"] != "UPTRACE_DSN empty" {
		t.Fatalf("expected one disabled entry with reason, got %+v", logs.All())
	}
}

func TestResourceAttributes(t *testing.T) {
	memory := resourceAttributes(config.Config{StoreBackend: config.BackendMemory})
	if len(memory) != 2 || memory[0].Value.AsString() != "memory" {
		t.Fatalf("unexpected memory attributes: %v", memory)
	}

	pg := resourceAttributes(config.Config{StoreBackend: config.BackendPostgres, DBMaxOpenConns: 4, CacheEnabled: true})
	if len(pg) != 3 || !pg[1].Value.AsBool() || pg[2].Value.AsInt64() != 4 {
		t.Fatalf("unexpected postgres attributes: %v", pg)
	}
}
