package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("SEED_FILE", "")

	cfg := Load()
	if cfg.AppName != "Claudia Martínez Estética Spa" {
		t.Errorf("AppName default = %q", cfg.AppName)
	}
	if cfg.SeedFile != "" {
		t.Errorf("SeedFile default = %q", cfg.SeedFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "Otro Spa")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")

	cfg := Load()
	if cfg.AppName != "Otro Spa" || cfg.SeedFile != "/tmp/seed.yaml" {
		t.Errorf("env not honored: %+v", cfg)
	}
}
