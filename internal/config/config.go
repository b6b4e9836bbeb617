// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
)

const (
	configFilePathEnv     = "COOKINGPUPPY_CONFIG"
	defaultConfigFilePath = "/data/cookingpuppy.yaml"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultHostOrigin        = "http://localhost:8080"
	defaultDatabaseHost      = "localhost"
	defaultDatabasePort      = 5432
	defaultImportBaseURL     = "https://api-uno.marmiton.org/recipe"
	defaultImportConcurrency = 8
	defaultRequestTimeout    = 30 * time.Second
	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute
)

var (
	ErrDatabaseRequired = errors.New("storage driver postgres requires a database configuration")
	ErrMemoryInProd     = errors.New("storage driver memory is not allowed in PROD, configure a database")
)

type StorageDriver string

const (
	StorageDriverPostgres StorageDriver = "postgres"
	StorageDriverMemory   StorageDriver = "memory"
)

func (s StorageDriver) Validate() error {
	switch s {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	}
	return fmt.Errorf("unknown storage driver: %q", s)
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	}
	return fmt.Errorf("unknown log level: %q", l)
}

// Level converts l to its slog level. Unknown levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// The validator succeeds only if every field listed in the tag parameter is
// zero, or every one of them is non-zero. It must be attached to a placeholder
// field and inspects the parent struct. Field names are given as a comma- or
// space-separated list (e.g. `validate:"allOrNothing=A,B,C"`).
//
// Nil pointers and interfaces count as zero; non-nil ones are dereferenced
// before the check. A non-struct parent, an unknown field name or an empty list
// fails validation to signal misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// e.g., "Config.Database.Validate" -> "Database"
			namespace := e.Namespace()
			parts := strings.Split(namespace, ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type Storage struct {
	Driver StorageDriver `yaml:"driver" validate:"validateFn"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// Configured reports whether any connection credential is set.
func (d Database) Configured() bool {
	return d.Database != "" || d.User != "" || d.Password != ""
}

type Import struct {
	BaseURL           string        `yaml:"base_url" validate:"url"`
	IDsPath           string        `yaml:"ids_path" validate:"omitempty,filepath"`
	Concurrency       int           `yaml:"concurrency" validate:"gte=1,lte=64"`
	RequestTimeout    time.Duration `yaml:"request_timeout" validate:"gt=0"`
	RetryMax          int           `yaml:"retry_max" validate:"gte=0,lte=10"`
	RequestsPerSecond float64       `yaml:"requests_per_second" validate:"gte=0"`
}

// RateLimit bounds write requests per client IP. Zero requests disables it.
type RateLimit struct {
	Requests int           `yaml:"requests" validate:"gte=0"`
	Window   time.Duration `yaml:"window" validate:"gte=0"`
}

type Config struct {
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	LogLevel   LogLevel  `yaml:"log_level" validate:"validateFn"`
	Storage    Storage   `yaml:"storage"`
	Database   Database  `yaml:"database"`
	Import     Import    `yaml:"import"`
	RateLimit  RateLimit `yaml:"rate_limit"`
}

func validate(config Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(v)
	if err := v.Struct(config); err != nil {
		return formatValidationError(err)
	}
	if config.Storage.Driver == StorageDriverPostgres && !config.Database.Configured() {
		return ErrDatabaseRequired
	}
	if config.Env == EnvProd && config.Storage.Driver == StorageDriverMemory {
		return ErrMemoryInProd
	}
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		HostOrigin: loadWithDefault("HOST_ORIGIN", defaultHostOrigin),
		LogLevel:   LogLevel(loadWithDefault("LOG_LEVEL", "")),
		Storage: Storage{
			Driver: StorageDriver(loadWithDefault("STORAGE_DRIVER", "")),
		},
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", ""),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	if databasePort := loadWithDefault("DATABASE_PORT", ""); databasePort != "" {
		port, err := strconv.ParseUint(databasePort, 10, 16)
		if err != nil {
			return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
		}
		conf.Database.Port = uint16(port)
	}

	// Import
	conf.Import = Import{
		BaseURL: loadWithDefault("IMPORT_BASE_URL", ""),
		IDsPath: loadWithDefault("IMPORT_IDS_PATH", ""),
	}
	if v := loadWithDefault("IMPORT_CONCURRENCY", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return conf, fmt.Errorf("invalid IMPORT_CONCURRENCY (%q): %w", v, err)
		}
		conf.Import.Concurrency = n
	}
	if v := loadWithDefault("IMPORT_REQUEST_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return conf, fmt.Errorf("invalid IMPORT_REQUEST_TIMEOUT (%q): %w", v, err)
		}
		conf.Import.RequestTimeout = d
	}
	if v := loadWithDefault("IMPORT_RETRY_MAX", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return conf, fmt.Errorf("invalid IMPORT_RETRY_MAX (%q): %w", v, err)
		}
		conf.Import.RetryMax = n
	}
	if v := loadWithDefault("IMPORT_REQUESTS_PER_SECOND", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return conf, fmt.Errorf("invalid IMPORT_REQUESTS_PER_SECOND (%q): %w", v, err)
		}
		conf.Import.RequestsPerSecond = f
	}

	// Rate limit
	conf.RateLimit.Requests = -1
	if v := loadWithDefault("RATE_LIMIT_REQUESTS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return conf, fmt.Errorf("invalid RATE_LIMIT_REQUESTS (%q): %w", v, err)
		}
		conf.RateLimit.Requests = n
	}
	if v := loadWithDefault("RATE_LIMIT_WINDOW", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return conf, fmt.Errorf("invalid RATE_LIMIT_WINDOW (%q): %w", v, err)
		}
		conf.RateLimit.Window = d
	}

	setDefaults(&conf)
	if err := validate(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

// setDefaults fills unset fields. A negative RateLimit.Requests marks the
// limit as unset, so an explicit zero can disable it.
func setDefaults(config *Config) {
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = defaultHostOrigin
	}
	if config.LogLevel == "" {
		if config.Env == EnvProd {
			config.LogLevel = LogLevelInfo
		} else {
			config.LogLevel = LogLevelDebug
		}
	}

	// Only default the connection target if the database is being configured
	if config.Database.Configured() {
		if config.Database.Host == "" {
			config.Database.Host = defaultDatabaseHost
		}
		if config.Database.Port == 0 {
			config.Database.Port = defaultDatabasePort
		}
	}
	if config.Storage.Driver == "" {
		if config.Database.Configured() {
			config.Storage.Driver = StorageDriverPostgres
		} else {
			config.Storage.Driver = StorageDriverMemory
		}
	}

	if config.Import.BaseURL == "" {
		config.Import.BaseURL = defaultImportBaseURL
	}
	if config.Import.Concurrency == 0 {
		config.Import.Concurrency = defaultImportConcurrency
	}
	if config.Import.RequestTimeout == 0 {
		config.Import.RequestTimeout = defaultRequestTimeout
	}

	if config.RateLimit.Requests < 0 {
		config.RateLimit.Requests = defaultRateLimitRequests
	}
	if config.RateLimit.Window == 0 {
		config.RateLimit.Window = defaultRateLimitWindow
	}
}

func loadConfigFromFile(path string) (Config, error) {
	// Read file
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into config
	config := Config{RateLimit: RateLimit{Requests: -1}}
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	setDefaults(&config)
	if err := validate(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file named by COOKINGPUPPY_CONFIG (or the default
// path) when it exists, and the environment otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault(configFilePathEnv, defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
