package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Storage.SQLite.Path != ".data/taskboard.db" {
		t.Errorf("Storage.SQLite.Path = %q, want \".data/taskboard.db\"", cfg.Storage.SQLite.Path)
	}
}

func TestLoad_TestProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("Load(\"test\") error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 1 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 1", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 0 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 0 (disabled)", cfg.Client.RateLimit.RequestsPerSecond)
	}
	if cfg.Board.CommitTimeout != 2*time.Second {
		t.Errorf("Board.CommitTimeout = %v, want 2s", cfg.Board.CommitTimeout)
	}
	if cfg.Board.LockRetries != 3 {
		t.Errorf("Board.LockRetries = %d, want 3 (from base)", cfg.Board.LockRetries)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideStorageDriver(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_DRIVER", "neo4j")
	t.Setenv("APP_STORAGE_NEO4J_URI", "neo4j://graph:7687")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Driver != "neo4j" {
		t.Errorf("Storage.Driver = %q, want \"neo4j\"", cfg.Storage.Driver)
	}
	if cfg.Storage.Neo4j.URI != "neo4j://graph:7687" {
		t.Errorf("Storage.Neo4j.URI = %q, want \"neo4j://graph:7687\"", cfg.Storage.Neo4j.URI)
	}
}

func TestLoad_EnvOverrideKeyOnlyInDefaults(t *testing.T) {
	t.Chdir("../../..")
	// storage.neo4j.password is never written to YAML; the defaults layer
	// makes it addressable through the environment.
	t.Setenv("APP_STORAGE_NEO4J_PASSWORD", "s3cret")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Neo4j.Password != "s3cret" {
		t.Errorf("Storage.Neo4j.Password = %q, want env value", cfg.Storage.Neo4j.Password)
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Storage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"sqlite ok", func(*config.Config) {}, false},
		{"unknown driver", func(c *config.Config) { c.Storage.Driver = "postgres" }, true},
		{"sqlite without path", func(c *config.Config) { c.Storage.SQLite.Path = "" }, true},
		{"neo4j ok", func(c *config.Config) { c.Storage.Driver = "neo4j" }, false},
		{"neo4j without uri", func(c *config.Config) {
			c.Storage.Driver = "neo4j"
			c.Storage.Neo4j.URI = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Board(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Board.CommitTimeout = 0
	cfg.Board.LockRetries = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want error")
	}
	for _, want := range []string{"board.commit_timeout", "board.lock_retries"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestValidate_RateLimitBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit.BurstSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero burst with rate limiting enabled")
	}

	cfg.Client.RateLimit.RequestsPerSecond = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with rate limiting disabled: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 50,
				BurstSize:         10,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Storage: config.StorageConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: "taskboard.db", BusyTimeout: 5 * time.Second},
			Neo4j: config.Neo4jConfig{
				URI:      "neo4j://localhost:7687",
				Username: "neo4j",
				Database: "neo4j",
			},
		},
		Board: config.BoardConfig{
			CommitTimeout: 10 * time.Second,
			LockRetries:   3,
		},
	}
}
