package database

import (
	"testing"
	"time"

	"github.com/yalgashev/survey/config"
)

func TestFromCentralConfig(t *testing.T) {
	c := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "evals",
		Password: "secret",
		DBName:   "evaluations",
		SSLMode:  "require",
	}
	c.Pool.MaxOpenConns = 10
	c.Migrations.SafeMode = true

	cfg := FromCentralConfig(c)

	want := "host=db port=5433 user=evals password=secret dbname=evaluations sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if cfg.MaxOpenConns != 10 || !cfg.SafeMode {
		t.Errorf("pool/migration settings not copied: %+v", cfg)
	}

	other := cfg.WithDBName("postgres")
	if other.DBName != "postgres" || cfg.DBName != "evaluations" {
		t.Errorf("WithDBName must not modify the receiver")
	}
}

func TestConnMaxLifetime(t *testing.T) {
	if got := (Config{}).ConnMaxLifetime(); got != 5*time.Minute {
		t.Errorf("default ConnMaxLifetime() = %v, want 5m", got)
	}
	if got := (Config{ConnMaxLifetimeMin: 30}).ConnMaxLifetime(); got != 30*time.Minute {
		t.Errorf("ConnMaxLifetime() = %v, want 30m", got)
	}
}
