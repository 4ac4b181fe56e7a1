package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(envDotenvPath, filepath.Join(dir, "missing.env"))
	return dir
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.RAWG.BaseURL != defaultRAWGBaseURL {
		t.Fatalf("expected default rawg base url, got %s", cfg.RAWG.BaseURL)
	}
	if cfg.CheapShark.BaseURL != defaultCheapSharkBaseURL {
		t.Fatalf("expected default cheapshark base url, got %s", cfg.CheapShark.BaseURL)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.CacheMaxEntries != 0 {
		t.Fatalf("expected unbounded cache by default, got %d", cfg.CacheMaxEntries)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "5000")
	t.Setenv("RAWG_BASE_URL", "http://rawg.local/api")
	t.Setenv("RAWG_API_KEY", " secret ")
	t.Setenv("CHEAPSHARK_BASE_URL", "http://cheapshark.local")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("CACHE_MAX_ENTRIES", "500")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" || cfg.RAWG.BaseURL != "http://rawg.local/api" || cfg.RAWG.APIKey != "secret" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.CheapShark.BaseURL != "http://cheapshark.local" {
		t.Fatalf("expected cheapshark override, got %s", cfg.CheapShark.BaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.CacheMaxEntries != 500 {
		t.Fatalf("unexpected timeout/cache %s/%d", cfg.HTTPTimeout, cfg.CacheMaxEntries)
	}
	if cfg.Logging.Level != "debug" || cfg.Metrics.Enabled {
		t.Fatalf("unexpected logging/metrics %+v %+v", cfg.Logging, cfg.Metrics)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "gamescout.yaml", `
port: "7000"
http_timeout: 4s
rawg:
  base_url: http://yaml-rawg/api
  api_key: from-yaml
logging:
  format: text
`)
	t.Setenv(envConfigPath, path)
	t.Setenv("RAWG_API_KEY", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7000" || cfg.HTTPTimeout != 4*time.Second {
		t.Fatalf("expected yaml values, got %+v", cfg)
	}
	if cfg.RAWG.BaseURL != "http://yaml-rawg/api" {
		t.Fatalf("expected yaml base url, got %s", cfg.RAWG.BaseURL)
	}
	if cfg.RAWG.APIKey != "from-env" {
		t.Fatalf("expected env to win over yaml, got %s", cfg.RAWG.APIKey)
	}
	if cfg.Logging.Format != "text" || cfg.Logging.Level != defaultLogLevel {
		t.Fatalf("expected yaml format and default level, got %+v", cfg.Logging)
	}
	if cfg.CheapShark.BaseURL != defaultCheapSharkBaseURL {
		t.Fatalf("expected untouched default, got %s", cfg.CheapShark.BaseURL)
	}
}

func TestLoadDotenvUnderEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "RAWG_API_KEY=dotenv-key\nPORT=6100\n")
	t.Setenv(envDotenvPath, path)
	t.Setenv("PORT", "6200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RAWG.APIKey != "dotenv-key" {
		t.Fatalf("expected dotenv api key, got %q", cfg.RAWG.APIKey)
	}
	if cfg.Port != "6200" {
		t.Fatalf("expected environment to win over dotenv, got %s", cfg.Port)
	}
	if _, set := os.LookupEnv("RAWG_API_KEY"); set {
		t.Fatalf("expected dotenv values to stay out of the process environment")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, dir string)
		want  string
	}{
		{
			name: "missing config file",
			setup: func(t *testing.T, dir string) {
				t.Setenv(envConfigPath, filepath.Join(dir, "nope.yaml"))
			},
			want: "reading config file",
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T, dir string) {
				t.Setenv(envConfigPath, writeFile(t, dir, "bad.yaml", "port: [unterminated"))
			},
			want: "parsing config file",
		},
		{
			name: "bad duration",
			setup: func(t *testing.T, dir string) {
				t.Setenv("HTTP_TIMEOUT", "soon")
			},
			want: "parse env",
		},
		{
			name: "negative cache bound",
			setup: func(t *testing.T, dir string) {
				t.Setenv("CACHE_MAX_ENTRIES", "-1")
			},
			want: "cache max entries",
		},
		{
			name: "blank base url",
			setup: func(t *testing.T, dir string) {
				t.Setenv(envConfigPath, writeFile(t, dir, "blank.yaml", "cheapshark:\n  base_url: \"\"\n"))
			},
			want: "cheapshark base url is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			tc.setup(t, dir)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNonPositiveTimeoutFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_TIMEOUT", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.HTTPTimeout)
	}
}
