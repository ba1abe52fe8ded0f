package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Calendar.Timezone != "UTC" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Storage.SyncWrites || cfg.Storage.GCInterval != 5*time.Minute {
		t.Errorf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Tracing.Exporter != "none" {
		t.Errorf("unexpected tracing exporter: %q", cfg.Tracing.Exporter)
	}
	if cfg.Interpreter.CacheTTL != 10*time.Minute || cfg.Interpreter.CacheSize != 1024 {
		t.Errorf("unexpected interpreter defaults: %+v", cfg.Interpreter)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("STORAGE_IN_MEMORY", "true")
	t.Setenv("CALENDAR_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Storage.InMemory || cfg.Calendar.Timezone != "Asia/Ho_Chi_Minh" || cfg.Security.APIKey != "from-env" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Storage: StorageConfig{Path: "/tmp/x", GCDiscardRatio: 0.5}}, false},
		{"in memory without path", Config{Storage: StorageConfig{InMemory: true}}, false},
		{"missing path", Config{}, true},
		{"bad ratio", Config{Storage: StorageConfig{Path: "/tmp/x", GCDiscardRatio: 1.5}}, true},
		{"unknown exporter", Config{Storage: StorageConfig{InMemory: true}, Tracing: TracingConfig{Exporter: "zipkin"}}, true},
		{"negative rate", Config{Storage: StorageConfig{InMemory: true}, Security: SecurityConfig{RateLimitPerMin: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
