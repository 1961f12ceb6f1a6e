package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.StoreBackend != "file" {
		t.Fatalf("default backend = %s", cfg.StoreBackend)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/x.db")
	cfg := Load()
	if cfg.Port != "9000" || cfg.StoreBackend != "sqlite" || cfg.SQLiteDBPath != "/tmp/x.db" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []Config{
		{Port: "abc", StoreBackend: "file", DataDir: "./data"},
		{Port: "70000", StoreBackend: "file", DataDir: "./data"},
		{Port: "8082", StoreBackend: "redis"},
		{Port: "8082", StoreBackend: "file", DataDir: ""},
		{Port: "8082", StoreBackend: "sqlite", SQLiteDBPath: ""},
	}
	for i, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, cfg)
		}
	}
}
