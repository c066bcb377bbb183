package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/riskibarqy/cricviz/internal/config"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// ShutdownFunc flushes buffered telemetry. The CLI calls it once before exiting.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitUptrace points the global OpenTelemetry providers at Uptrace. When telemetry is
// off the returned ShutdownFunc does nothing and the log mirror is cleared.
func InitUptrace(cfg config.Config, logger *logging.Logger) (ShutdownFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if reason := telemetryDisabledReason(cfg); reason != "" {
		logging.SetMirror(nil)
		logger.Debug("uptrace disabled", "reason", reason)
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(resourceAttributes(cfg)...),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	var mirror logging.MirrorFunc
	if cfg.UptraceLogsEnabled {
		mirror = newUptraceLogMirror(cfg.ServiceVersion, cfg.LogLevel)
	}
	logging.SetMirror(mirror)

	logger.Debug("uptrace enabled",
		"store_backend", cfg.StoreBackend,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return errors.Join(uptrace.ForceFlush(ctx), uptrace.Shutdown(ctx))
	}, nil
}

func telemetryDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	default:
		return ""
	}
}

func resourceAttributes(cfg config.Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("cricviz.store_backend", cfg.StoreBackend),
		attribute.Bool("cricviz.cache_enabled", cfg.CacheEnabled),
	}
	if cfg.StoreBackend == config.BackendPostgres {
		attrs = append(attrs, attribute.Int("cricviz.db_max_open_conns", cfg.DBMaxOpenConns))
	}
	return attrs
}
