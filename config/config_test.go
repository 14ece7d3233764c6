package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if !cfg.Fiscal.DefaultGoal.Equal(decimal.NewFromInt(11500)) {
		t.Errorf("default goal = %s, want 11500", cfg.Fiscal.DefaultGoal)
	}
	if cfg.Fiscal.YearsBack != 3 || cfg.Fiscal.YearsForward != 1 {
		t.Errorf("fiscal options = %d back %d forward, want 3/1", cfg.Fiscal.YearsBack, cfg.Fiscal.YearsForward)
	}
	if cfg.Renewal.ReminderDays != 30 {
		t.Errorf("reminder days = %d, want 30", cfg.Renewal.ReminderDays)
	}
	if cfg.Renewal.DispatchMaxPerMinute != 5 {
		t.Errorf("dispatch limit = %d, want 5", cfg.Renewal.DispatchMaxPerMinute)
	}
	if cfg.Cache.SummaryTTL != time.Minute {
		t.Errorf("summary ttl = %s, want 1m", cfg.Cache.SummaryTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FISCAL_DEFAULT_GOAL", "20000.50")
	t.Setenv("FISCAL_YEARS_BACK", "5")
	t.Setenv("RENEWAL_REMINDER_DAYS", "14")
	t.Setenv("SUMMARY_CACHE_TTL", "5m")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("TZ_NAME", "America/New_York")

	cfg := Load()

	if !cfg.Fiscal.DefaultGoal.Equal(decimal.RequireFromString("20000.50")) {
		t.Errorf("default goal = %s", cfg.Fiscal.DefaultGoal)
	}
	if cfg.Fiscal.YearsBack != 5 {
		t.Errorf("years back = %d", cfg.Fiscal.YearsBack)
	}
	if cfg.Renewal.ReminderDays != 14 {
		t.Errorf("reminder days = %d", cfg.Renewal.ReminderDays)
	}
	if cfg.Cache.SummaryTTL != 5*time.Minute {
		t.Errorf("summary ttl = %s", cfg.Cache.SummaryTTL)
	}
	if cfg.Redis.Enabled {
		t.Error("redis should be disabled")
	}
	if cfg.Server.Location().String() != "America/New_York" {
		t.Errorf("location = %s", cfg.Server.Location())
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("FISCAL_DEFAULT_GOAL", "lots")
	t.Setenv("RENEWAL_DISPATCH_MAX_PER_MINUTE", "five")
	t.Setenv("SUMMARY_CACHE_TTL", "soon")
	t.Setenv("TZ_NAME", "Nowhere/Special")

	cfg := Load()

	if !cfg.Fiscal.DefaultGoal.Equal(decimal.NewFromInt(11500)) {
		t.Errorf("default goal = %s, want fallback 11500", cfg.Fiscal.DefaultGoal)
	}
	if cfg.Renewal.DispatchMaxPerMinute != 5 {
		t.Errorf("dispatch limit = %d, want fallback 5", cfg.Renewal.DispatchMaxPerMinute)
	}
	if cfg.Cache.SummaryTTL != time.Minute {
		t.Errorf("summary ttl = %s, want fallback 1m", cfg.Cache.SummaryTTL)
	}
	if cfg.Server.Location() != time.UTC {
		t.Errorf("unknown zone should fall back to UTC, got %s", cfg.Server.Location())
	}
}
