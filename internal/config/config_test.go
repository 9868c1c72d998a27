package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TIE_BREAK_POLICY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port, got %q", cfg.HTTPPort)
	}
	if !cfg.AutoMigrate {
		t.Fatalf("expected auto migrate by default")
	}
	if cfg.InviteTTL() != 168*time.Hour {
		t.Fatalf("unexpected invite ttl %v", cfg.InviteTTL())
	}
	if cfg.SubmitRateWindow() != time.Minute || cfg.SubmitRateMax != 20 {
		t.Fatalf("unexpected rate limit config: %v / %d", cfg.SubmitRateWindow(), cfg.SubmitRateMax)
	}
	if cfg.MatchTierFloor != "needs work" {
		t.Fatalf("unexpected tier floor %q", cfg.MatchTierFloor)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVITE_TTL_HOURS", "2")
	t.Setenv("SUBMIT_RATE_WINDOW_SECONDS", "5")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.AutoMigrate {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.InviteTTL() != 2*time.Hour || cfg.SubmitRateWindow() != 5*time.Second {
		t.Fatalf("unexpected durations %v / %v", cfg.InviteTTL(), cfg.SubmitRateWindow())
	}
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
