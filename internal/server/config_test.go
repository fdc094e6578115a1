package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/credit-simulator/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.ShutdownTimeout != constants.DefaultShutdownTimeoutSeconds {
		t.Fatalf("expected default shutdown timeout, got %d", cfg.ShutdownTimeout)
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SimulatorConfig != "" {
		t.Fatalf("expected no simulator config path, got %q", cfg.SimulatorConfig)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 16K
simulatorConfig: /etc/credit-simulator/config.yaml
allowedOrigins:
  - https://example.com
shutdownTimeoutSeconds: 5
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 16*1024 {
		t.Fatalf("expected body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.SimulatorConfig != "/etc/credit-simulator/config.yaml" {
		t.Fatalf("unexpected simulator config path %s", cfg.SimulatorConfig)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://example.com" {
		t.Fatalf("unexpected allowed origins %v", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 5 {
		t.Fatalf("expected shutdown timeout 5, got %d", cfg.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected logging format console, got %s", cfg.Logging.Format)
	}
}

func writeServerConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeServerConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.ShutdownGrace() != time.Duration(constants.DefaultShutdownTimeoutSeconds)*time.Second {
		t.Fatalf("unexpected shutdown grace %v", cfg.ShutdownGrace())
	}
}

func TestLoadConfigRelativeSimulatorConfig(t *testing.T) {
	path := writeServerConfig(t, "simulatorConfig: config.yaml\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	expected := filepath.Join(filepath.Dir(path), "config.yaml")
	if cfg.SimulatorConfig != expected {
		t.Fatalf("expected %s, got %s", expected, cfg.SimulatorConfig)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeServerConfig(t, "maxUploadSize: 10M\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unknown key but got nil")
	}
}

func TestLoadConfigCleansOrigins(t *testing.T) {
	path := writeServerConfig(t, `allowedOrigins:
  - " https://example.com/ "
  - https://example.com
  - ""
  - http://localhost:3000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	expected := []string{"https://example.com", "http://localhost:3000"}
	if len(cfg.AllowedOrigins) != len(expected) {
		t.Fatalf("expected origins %v, got %v", expected, cfg.AllowedOrigins)
	}
	for i := range expected {
		if cfg.AllowedOrigins[i] != expected[i] {
			t.Fatalf("expected origins %v, got %v", expected, cfg.AllowedOrigins)
		}
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("maxBodySize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestSetBodySizeBytes(t *testing.T) {
	cfg, _ := LoadConfig("")
	cfg.SetBodySizeBytes(0)
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.BodySizeBytes())
	}
	cfg.SetBodySizeBytes(2048)
	if cfg.BodySizeBytes() != 2048 || cfg.MaxBodySize != "2048" {
		t.Fatalf("expected override to 2048, got %d (%s)", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"64K":       64 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1GB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
	if _, err := ParseSize("K"); err == nil {
		t.Fatal("expected error for missing number")
	}
	if _, err := ParseSize("9223372036854775807M"); err == nil {
		t.Fatal("expected error for overflow")
	}
}
