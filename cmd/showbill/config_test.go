package main

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/showbill")
	t.Setenv("PORT", "")
	t.Setenv("DB_CONNECT_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("expected addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBConnectTimeout != 30*time.Second {
		t.Fatalf("expected 30s connect timeout, got %v", cfg.DBConnectTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log settings: %q / %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfigConnectTimeout(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/showbill")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.DBConnectTimeout != 5*time.Second {
		t.Fatalf("expected 5s connect timeout, got %v", cfg.DBConnectTimeout)
	}
}

func TestLoadConfigBadConnectTimeout(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/showbill")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for bad DB_CONNECT_TIMEOUT")
	}
}

func TestLoadConfigMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoadConfigBadLogFormat(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/showbill")
	t.Setenv("DB_CONNECT_TIMEOUT", "")
	t.Setenv("LOG_FORMAT", "xml")

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for bad LOG_FORMAT")
	}
}
