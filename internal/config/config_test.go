package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "LOG_MODE", "CORS_ORIGINS", "REDIS_ADDR", "REDIS_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg := Load(nil)

	if cfg.Port != "3001" {
		t.Fatalf("port: want=%q got=%q", "3001", cfg.Port)
	}
	if cfg.DBPath != "planner.db" {
		t.Fatalf("db path: want=%q got=%q", "planner.db", cfg.DBPath)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("cors origins: want=2 got=%d (%v)", len(cfg.CORSOrigins), cfg.CORSOrigins)
	}
	if cfg.SessionsEnabled() {
		t.Fatalf("sessions should be disabled without REDIS_ADDR")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load(nil)

	if cfg.Port != "9090" {
		t.Fatalf("port: want=%q got=%q", "9090", cfg.Port)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("cors origins: want=%v got=%v", want, cfg.CORSOrigins)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Fatalf("cors origin %d: want=%q got=%q", i, want[i], cfg.CORSOrigins[i])
		}
	}
	if !cfg.SessionsEnabled() {
		t.Fatalf("sessions should be enabled with REDIS_ADDR")
	}
}
