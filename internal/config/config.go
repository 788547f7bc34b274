package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "APICALL"

// Config holds the application configuration loaded from flags, environment variables and .env files.
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	LogLevel       string        `mapstructure:"log_level"`
	UserAgent      string        `mapstructure:"user_agent"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	RequestFile    string        `mapstructure:"request_file"`
	OutputFormat   string        `mapstructure:"output_format"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"user-agent": "user_agent",
	"timeout":    "timeout_seconds",
	"file":       "request_file",
	"output":     "output_format",
}

// Load reads configuration from environment variables, configs/.env and any
// flags in fs that were explicitly set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "apicall")
	v.SetDefault("log_level", "warn")
	v.SetDefault("user_agent", "")
	v.SetDefault("timeout_seconds", 0)
	v.SetDefault("request_file", "")
	v.SetDefault("output_format", "json")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for flagName, key := range flagKeys {
			f := fs.Lookup(flagName)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must be zero or positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output_format %q (want json or yaml)", cfg.OutputFormat)
	}

	return &cfg, nil
}
