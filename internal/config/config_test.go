package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/cricviz/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORE_BACKEND", "CACHE_ENABLED", "CACHE_TTL", "BOOTSTRAP_SEED", "LOG_LEVEL", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Fatalf("unexpected StoreBackend: %q", cfg.StoreBackend)
	}
	if cfg.CacheEnabled || cfg.BootstrapSeed {
		t.Fatalf("cache and bootstrap should be off by default")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.DBMaxOpenConns != 4 {
		t.Fatalf("unexpected DBMaxOpenConns: %d", cfg.DBMaxOpenConns)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DB_URL", "postgres://u:p@db:5432/cricviz?sslmode=disable")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("BOOTSTRAP_SEED", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.StoreBackend != BackendPostgres {
		t.Fatalf("unexpected env/backend: %q %q", cfg.AppEnv, cfg.StoreBackend)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 5*time.Minute || !cfg.BootstrapSeed {
		t.Fatalf("unexpected cache/bootstrap config: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"STORE_BACKEND":     "sqlite",
		"CACHE_TTL":         "soon",
		"CACHE_ENABLED":     "maybe",
		"DB_MAX_OPEN_CONNS": "0",
		"BOOTSTRAP_SEED":    "yes please",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CRICVIZ_TEST_DOTENV=from-file\nCRICVIZ_TEST_PRESET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("CRICVIZ_TEST_PRESET", "from-env")
	t.Setenv("CRICVIZ_TEST_DOTENV", "")
	os.Unsetenv("CRICVIZ_TEST_DOTENV")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv("CRICVIZ_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("CRICVIZ_TEST_PRESET"); got != "from-env" {
		t.Fatalf("existing variables must win, got %q", got)
	}

	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
