package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8470 {
		t.Errorf("expected default port 8470, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.Type != "local" {
		t.Errorf("expected default auth type local, got %s", cfg.Auth.Type)
	}
	if cfg.Notify.ReplyTo != "info@innovaedu.com" {
		t.Errorf("unexpected default reply-to: %s", cfg.Notify.ReplyTo)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORTAL_SERVER_PORT", "9000")
	t.Setenv("PORTAL_DATABASE_DRIVER", "postgres")
	t.Setenv("PORTAL_AUTH_TYPE", "supabase")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000 from env, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected driver postgres from env, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.Type != "supabase" {
		t.Errorf("expected auth type supabase from env, got %s", cfg.Auth.Type)
	}
}
