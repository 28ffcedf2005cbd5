package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
evaluation:
  default_language: uz
`)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Evaluation.DefaultLanguage != "uz" {
		t.Errorf("evaluation.default_language = %q, want uz", cfg.Evaluation.DefaultLanguage)
	}
	if cfg.Evaluation.CookieName != "evaluation_session" {
		t.Errorf("evaluation.cookie_name = %q", cfg.Evaluation.CookieName)
	}
	if cfg.Reports.TopProfessors != 5 || cfg.Reports.RecentDays != 7 {
		t.Errorf("reports = %+v, want top 5 over 7 days", cfg.Reports)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("database.port = %d, want 5432", cfg.Database.Port)
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("EVALS_SERVER_PORT", "7070")
	t.Setenv("EVALS_REPORTS_TOP_PROFESSORS", "3")

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Reports.TopProfessors != 3 {
		t.Errorf("reports.top_professors = %d, want 3", cfg.Reports.TopProfessors)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Setenv("EVALS_DATABASE_HOST", "")
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error without config file or env")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:     ServerConfig{Port: 8080},
			Evaluation: EvaluationConfig{DefaultLanguage: "en", SessionTTLMinutes: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative ttl", func(c *Config) { c.Evaluation.SessionTTLMinutes = -1 }, "session_ttl_minutes"},
		{"unknown language", func(c *Config) { c.Evaluation.DefaultLanguage = "de" }, "default_language"},
		{"blank language", func(c *Config) { c.Evaluation.DefaultLanguage = "" }, ""},
		{"email without sender", func(c *Config) { c.Email.Enabled = true }, "email.from"},
		{"email with sender", func(c *Config) {
			c.Email.Enabled = true
			c.Email.From = "noreply@example.edu"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
