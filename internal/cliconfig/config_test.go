package cliconfig

import (
	"testing"
	"time"
)

func TestDefault_TokensFallBackToEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("RAMP_TOKEN", "ramp-token")

	cfg := Default()
	if cfg.Github.Token != "gh-token" {
		t.Fatalf("Github.Token = %q, want %q", cfg.Github.Token, "gh-token")
	}
	if cfg.Ramp.Token != "ramp-token" {
		t.Fatalf("Ramp.Token = %q, want %q", cfg.Ramp.Token, "ramp-token")
	}
}

func TestFillDefaults_ConfiguredTokenWins(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := &Config{Github: APIConfig{Token: "file-token"}}
	cfg.fillDefaults()
	if cfg.Github.Token != "file-token" {
		t.Fatalf("Github.Token = %q, want %q", cfg.Github.Token, "file-token")
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	cfg := &Config{TimeoutSeconds: 15}
	if got, want := cfg.Timeout(), 15*time.Second; got != want {
		t.Fatalf("Timeout() = %v, want %v", got, want)
	}
	if got := (&Config{}).Timeout(); got != 0 {
		t.Fatalf("zero config Timeout() = %v, want 0", got)
	}
}
