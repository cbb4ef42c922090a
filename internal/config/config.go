package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	flagFormat        = "format"
	flagAddr          = "addr"
	flagLogLevel      = "log-level"
	flagLogJSON       = "log-json"
	flagDetectTimeout = "detect-timeout"
)

const (
	defaultFormat        = "text"
	defaultAddr          = ":8080"
	defaultLogLevel      = "info"
	defaultDetectTimeout = 10 * time.Second
)

var envNames = map[string]string{
	flagFormat:        "HWPROFILE_FORMAT",
	flagAddr:          "HWPROFILE_ADDR",
	flagLogLevel:      "HWPROFILE_LOG_LEVEL",
	flagLogJSON:       "HWPROFILE_LOG_JSON",
	flagDetectTimeout: "HWPROFILE_DETECT_TIMEOUT",
}

type Config struct {
	Format        string
	Addr          string
	LogLevel      string
	LogJSON       bool
	DetectTimeout time.Duration
	Sentry        Sentry
}

type Sentry struct {
	DSN         string
	Environment string
	Release     string
}

// RegisterFlags adds the shared flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagFormat, defaultFormat, "output format: text or json (env HWPROFILE_FORMAT)")
	fs.String(flagAddr, defaultAddr, "listen address for serve (env HWPROFILE_ADDR)")
	fs.String(flagLogLevel, defaultLogLevel, "log level (env HWPROFILE_LOG_LEVEL)")
	fs.Bool(flagLogJSON, false, "log as JSON (env HWPROFILE_LOG_JSON)")
	fs.Duration(flagDetectTimeout, defaultDetectTimeout, "hardware detection timeout (env HWPROFILE_DETECT_TIMEOUT)")
}

// Load resolves the configuration. A flag given on the command line wins,
// then the environment, then the flag default.
func Load(fs *pflag.FlagSet, getenv func(string) string) (Config, error) {
	var cfg Config
	var err error

	if cfg.Format, err = stringValue(fs, getenv, flagFormat); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != "text" && cfg.Format != "json" {
		return Config{}, fmt.Errorf("invalid %s %q: want text or json", flagFormat, cfg.Format)
	}

	if cfg.Addr, err = stringValue(fs, getenv, flagAddr); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = stringValue(fs, getenv, flagLogLevel); err != nil {
		return Config{}, err
	}

	raw, fromEnv, err := rawValue(fs, getenv, flagLogJSON)
	if err != nil {
		return Config{}, err
	}
	if cfg.LogJSON, err = strconv.ParseBool(raw); err != nil {
		return Config{}, fmt.Errorf("invalid %s %q: %w", source(flagLogJSON, fromEnv), raw, err)
	}

	raw, fromEnv, err = rawValue(fs, getenv, flagDetectTimeout)
	if err != nil {
		return Config{}, err
	}
	if cfg.DetectTimeout, err = time.ParseDuration(raw); err != nil {
		return Config{}, fmt.Errorf("invalid %s %q: %w", source(flagDetectTimeout, fromEnv), raw, err)
	}
	if cfg.DetectTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s %q: must be positive", source(flagDetectTimeout, fromEnv), raw)
	}

	cfg.Sentry = Sentry{
		DSN:         strings.TrimSpace(getenv("SENTRY_DSN")),
		Environment: strings.TrimSpace(getenv("SENTRY_ENVIRONMENT")),
		Release:     strings.TrimSpace(getenv("SENTRY_RELEASE")),
	}
	return cfg, nil
}

func stringValue(fs *pflag.FlagSet, getenv func(string) string, name string) (string, error) {
	value, _, err := rawValue(fs, getenv, name)
	return strings.TrimSpace(value), err
}

func rawValue(fs *pflag.FlagSet, getenv func(string) string, name string) (string, bool, error) {
	flag := fs.Lookup(name)
	if flag == nil {
		return "", false, fmt.Errorf("flag %q not registered", name)
	}
	if flag.Changed {
		return flag.Value.String(), false, nil
	}
	if env := strings.TrimSpace(getenv(envNames[name])); env != "" {
		return env, true, nil
	}
	return flag.Value.String(), false, nil
}

func source(name string, fromEnv bool) string {
	if fromEnv {
		return envNames[name]
	}
	return "--" + name
}
