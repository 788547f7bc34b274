package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "apicall" {
		t.Fatalf("AppName = %q", cfg.AppName)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("Timeout = %s, want 0", cfg.Timeout)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APICALL_TIMEOUT_SECONDS", "5")
	t.Setenv("APICALL_USER_AGENT", "env-agent/1.0")
	t.Setenv("APICALL_OUTPUT_FORMAT", "YAML")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %s, want 5s", cfg.Timeout)
	}
	if cfg.UserAgent != "env-agent/1.0" {
		t.Fatalf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("APICALL_TIMEOUT_SECONDS", "5")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("timeout", 0, "")
	fs.String("user-agent", "", "")
	if err := fs.Parse([]string{"--timeout", "9", "--user-agent", "flag-agent"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 9*time.Second {
		t.Fatalf("Timeout = %s, want 9s", cfg.Timeout)
	}
	if cfg.UserAgent != "flag-agent" {
		t.Fatalf("UserAgent = %q", cfg.UserAgent)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("APICALL_TIMEOUT_SECONDS", "-1")
		if _, err := Load(nil); err == nil {
			t.Fatalf("expected error for negative timeout")
		}
	})
	t.Run("output format", func(t *testing.T) {
		t.Setenv("APICALL_OUTPUT_FORMAT", "xml")
		if _, err := Load(nil); err == nil {
			t.Fatalf("expected error for unknown output format")
		}
	})
}
