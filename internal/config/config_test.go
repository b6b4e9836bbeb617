package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:      "all defaults",
			setup:     func(t *testing.T) {},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != "http://localhost:8080" {
					t.Errorf("expected HostOrigin %q, got %q", "http://localhost:8080", c.HostOrigin)
				}
				if c.LogLevel != LogLevelDebug {
					t.Errorf("expected LogLevel %q, got %q", LogLevelDebug, c.LogLevel)
				}
				if c.Storage.Driver != StorageDriverMemory {
					t.Errorf("expected Storage.Driver %q, got %q", StorageDriverMemory, c.Storage.Driver)
				}
				if c.Database.Host != "" || c.Database.Port != 0 {
					t.Errorf("expected empty Database, got %+v", c.Database)
				}
				if c.Import.BaseURL != "https://api-uno.marmiton.org/recipe" {
					t.Errorf("expected default Import.BaseURL, got %q", c.Import.BaseURL)
				}
				if c.Import.Concurrency != 8 {
					t.Errorf("expected Import.Concurrency 8, got %d", c.Import.Concurrency)
				}
				if c.Import.RequestTimeout != 30*time.Second {
					t.Errorf("expected Import.RequestTimeout 30s, got %v", c.Import.RequestTimeout)
				}
				if c.Import.RetryMax != 0 {
					t.Errorf("expected Import.RetryMax 0, got %d", c.Import.RetryMax)
				}
				if c.Import.IDsPath != "" {
					t.Errorf("expected empty Import.IDsPath, got %q", c.Import.IDsPath)
				}
				if c.RateLimit.Requests != 60 || c.RateLimit.Window != time.Minute {
					t.Errorf("expected RateLimit 60/1m, got %+v", c.RateLimit)
				}
			},
		},
		{
			name: "database configured",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Storage.Driver != StorageDriverPostgres {
					t.Errorf("expected Storage.Driver %q, got %q", StorageDriverPostgres, c.Storage.Driver)
				}
				if c.Database.Port != 5432 {
					t.Errorf("expected Database.Port 5432, got %d", c.Database.Port)
				}
				if c.Database.Host != "localhost" {
					t.Errorf("expected Database.Host %q, got %q", "localhost", c.Database.Host)
				}
				if c.Database.User != "testuser" {
					t.Errorf("expected Database.User %q, got %q", "testuser", c.Database.User)
				}
				if c.Database.Password != "testpass" {
					t.Errorf("expected Database.Password %q, got %q", "testpass", c.Database.Password)
				}
				if c.Database.Database != "testdb" {
					t.Errorf("expected Database.Database %q, got %q", "testdb", c.Database.Database)
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("HOST_ORIGIN", "https://example.com")
				t.Setenv("DATABASE_USER", "customuser")
				t.Setenv("DATABASE_PASSWORD", "custompass")
				t.Setenv("DATABASE", "customdb")
				t.Setenv("DATABASE_HOST", "db.example.com")
				t.Setenv("DATABASE_PORT", "5433")
				t.Setenv("IMPORT_BASE_URL", "https://recipes.example.com/api")
				t.Setenv("IMPORT_IDS_PATH", "/data/ids.txt")
				t.Setenv("IMPORT_CONCURRENCY", "4")
				t.Setenv("IMPORT_REQUEST_TIMEOUT", "10s")
				t.Setenv("IMPORT_RETRY_MAX", "2")
				t.Setenv("IMPORT_REQUESTS_PER_SECOND", "2.5")
				t.Setenv("RATE_LIMIT_REQUESTS", "0")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.LogLevel != LogLevelInfo {
					t.Errorf("expected LogLevel %q in PROD, got %q", LogLevelInfo, c.LogLevel)
				}
				if c.HostOrigin != "https://example.com" {
					t.Errorf("expected HostOrigin %q, got %q", "https://example.com", c.HostOrigin)
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected Database.Port 5433, got %d", c.Database.Port)
				}
				if c.Database.Host != "db.example.com" {
					t.Errorf("expected Database.Host %q, got %q", "db.example.com", c.Database.Host)
				}
				want := Import{
					BaseURL:           "https://recipes.example.com/api",
					IDsPath:           "/data/ids.txt",
					Concurrency:       4,
					RequestTimeout:    10 * time.Second,
					RetryMax:          2,
					RequestsPerSecond: 2.5,
				}
				if c.Import != want {
					t.Errorf("expected Import %+v, got %+v", want, c.Import)
				}
				if c.RateLimit.Requests != 0 {
					t.Errorf("expected RateLimit.Requests 0 (disabled), got %d", c.RateLimit.Requests)
				}
			},
		},
		{
			name: "invalid database port",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_PORT", "invalid")
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
			},
			wantError: true,
		},
		{
			name: "incomplete database",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_USER", "testuser")
			},
			wantError: true,
		},
		{
			name: "postgres without database",
			setup: func(t *testing.T) {
				t.Setenv("STORAGE_DRIVER", "postgres")
			},
			wantError: true,
		},
		{
			name: "unknown storage driver",
			setup: func(t *testing.T) {
				t.Setenv("STORAGE_DRIVER", "sqlite")
			},
			wantError: true,
		},
		{
			name: "unknown log level",
			setup: func(t *testing.T) {
				t.Setenv("LOG_LEVEL", "verbose")
			},
			wantError: true,
		},
		{
			name: "invalid import timeout",
			setup: func(t *testing.T) {
				t.Setenv("IMPORT_REQUEST_TIMEOUT", "soon")
			},
			wantError: true,
		},
		{
			name: "import concurrency out of range",
			setup: func(t *testing.T) {
				t.Setenv("IMPORT_CONCURRENCY", "1000")
			},
			wantError: true,
		},
		{
			name: "negative retries",
			setup: func(t *testing.T) {
				t.Setenv("IMPORT_RETRY_MAX", "-1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			config, err := loadConfigFromEnv()

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name: "complete config",
			yaml: `
env: PROD
host_origin: https://example.com
log_level: warn
storage:
  driver: postgres
database:
  host: db.example.com
  port: 5433
  database: proddb
  user: produser
  password: prodpass
import:
  base_url: https://recipes.example.com/api
  ids_path: /data/ids.txt
  concurrency: 16
  request_timeout: 45s
  retry_max: 3
  requests_per_second: 10
rate_limit:
  requests: 120
  window: 30s
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.LogLevel != LogLevelWarn {
					t.Errorf("expected LogLevel %q, got %q", LogLevelWarn, c.LogLevel)
				}
				if c.Storage.Driver != StorageDriverPostgres {
					t.Errorf("expected Storage.Driver %q, got %q", StorageDriverPostgres, c.Storage.Driver)
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected Database.Port 5433, got %d", c.Database.Port)
				}
				if c.Import.Concurrency != 16 || c.Import.RequestTimeout != 45*time.Second || c.Import.RetryMax != 3 {
					t.Errorf("unexpected Import %+v", c.Import)
				}
				if c.Import.RequestsPerSecond != 10 {
					t.Errorf("expected Import.RequestsPerSecond 10, got %v", c.Import.RequestsPerSecond)
				}
				if c.RateLimit.Requests != 120 || c.RateLimit.Window != 30*time.Second {
					t.Errorf("unexpected RateLimit %+v", c.RateLimit)
				}
			},
		},
		{
			name: "minimal config with defaults",
			yaml: `
database:
  database: testdb
  user: testuser
  password: testpass
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected default Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != "http://localhost:8080" {
					t.Errorf("expected default HostOrigin %q, got %q", "http://localhost:8080", c.HostOrigin)
				}
				if c.Storage.Driver != StorageDriverPostgres {
					t.Errorf("expected inferred Storage.Driver %q, got %q", StorageDriverPostgres, c.Storage.Driver)
				}
				if c.Database.Host != "localhost" {
					t.Errorf("expected default Database.Host %q, got %q", "localhost", c.Database.Host)
				}
				if c.Database.Port != 5432 {
					t.Errorf("expected default Database.Port 5432, got %d", c.Database.Port)
				}
				if c.Import.RequestTimeout != 30*time.Second {
					t.Errorf("expected default Import.RequestTimeout, got %v", c.Import.RequestTimeout)
				}
				if c.RateLimit.Requests != 60 {
					t.Errorf("expected default RateLimit.Requests 60, got %d", c.RateLimit.Requests)
				}
			},
		},
		{
			name: "memory storage",
			yaml: `
storage:
  driver: memory
rate_limit:
  requests: 0
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Storage.Driver != StorageDriverMemory {
					t.Errorf("expected Storage.Driver %q, got %q", StorageDriverMemory, c.Storage.Driver)
				}
				if c.RateLimit.Requests != 0 {
					t.Errorf("expected explicit RateLimit.Requests 0 to be kept, got %d", c.RateLimit.Requests)
				}
			},
		},
		{
			name:      "invalid YAML",
			yaml:      `{invalid yaml content`,
			wantError: true,
		},
		{
			name: "invalid host origin",
			yaml: `
host_origin: not-a-valid-url
`,
			wantError: true,
		},
		{
			name: "invalid import base url",
			yaml: `
import:
  base_url: marmiton
`,
			wantError: true,
		},
		{
			name: "incomplete database",
			yaml: `
database:
  database: testdb
  user: testuser
`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "config.yaml")

			if err := os.WriteFile(configPath, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("failed to write test config file: %v", err)
			}

			config, err := loadConfigFromFile(configPath)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile_FileNotFound(t *testing.T) {
	_, err := loadConfigFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("file takes precedence", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "cookingpuppy.yaml")
		if err := os.WriteFile(configPath, []byte("log_level: error\n"), 0o644); err != nil {
			t.Fatalf("failed to write test config file: %v", err)
		}
		t.Setenv(configFilePathEnv, configPath)
		t.Setenv("LOG_LEVEL", "debug")

		c, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.LogLevel != LogLevelError {
			t.Errorf("expected LogLevel from file %q, got %q", LogLevelError, c.LogLevel)
		}
	})

	t.Run("falls back to environment", func(t *testing.T) {
		t.Setenv(configFilePathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("LOG_LEVEL", "warn")

		c, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.LogLevel != LogLevelWarn {
			t.Errorf("expected LogLevel from env %q, got %q", LogLevelWarn, c.LogLevel)
		}
	})
}

func TestFormatValidationError(t *testing.T) {
	err := validate(Config{
		Env:        EnvDev,
		HostOrigin: "http://localhost:8080",
		LogLevel:   LogLevelInfo,
		Storage:    Storage{Driver: StorageDriverMemory},
		Database:   Database{User: "someone"},
		Import:     Import{BaseURL: "https://example.com", Concurrency: 1, RequestTimeout: time.Second},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Database configuration is incomplete") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidatePostgresRequiresDatabase(t *testing.T) {
	c := Config{Storage: Storage{Driver: StorageDriverPostgres}, RateLimit: RateLimit{Requests: -1}}
	setDefaults(&c)
	if err := validate(c); !errors.Is(err, ErrDatabaseRequired) {
		t.Errorf("expected ErrDatabaseRequired, got %v", err)
	}
}

func TestValidateRejectsMemoryInProd(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr error
	}{
		{
			name:    "inferred memory in PROD",
			conf:    Config{Env: EnvProd, RateLimit: RateLimit{Requests: -1}},
			wantErr: ErrMemoryInProd,
		},
		{
			name:    "explicit memory in PROD",
			conf:    Config{Env: EnvProd, Storage: Storage{Driver: StorageDriverMemory}, RateLimit: RateLimit{Requests: -1}},
			wantErr: ErrMemoryInProd,
		},
		{
			name: "memory in DEV",
			conf: Config{Env: EnvDev, RateLimit: RateLimit{Requests: -1}},
		},
		{
			name: "postgres in PROD",
			conf: Config{
				Env:       EnvProd,
				Database:  Database{Database: "recipes", User: "puppy", Password: "secret"},
				RateLimit: RateLimit{Requests: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.conf
			setDefaults(&c)
			err := validate(c)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfigFromEnvRejectsMemoryInProd(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("HOST_ORIGIN", "https://example.com")
	if _, err := loadConfigFromEnv(); !errors.Is(err, ErrMemoryInProd) {
		t.Errorf("expected ErrMemoryInProd, got %v", err)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.Level(); got != tt.want {
			t.Errorf("LogLevel(%q).Level() = %v, want %v", tt.level, got, tt.want)
		}
	}
}
