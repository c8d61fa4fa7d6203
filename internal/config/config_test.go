package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Database.DBName != "booking_system" {
		t.Errorf("dbname = %q", cfg.Database.DBName)
	}
	if cfg.AI.OpenAI.Model != "gpt-3.5-turbo" {
		t.Errorf("openai model = %q", cfg.AI.OpenAI.Model)
	}
	if cfg.AI.Gemini.BaseURL == "" {
		t.Error("gemini base url should default to the OpenAI-compatible endpoint")
	}
	if cfg.Voice.Model != "eleven_multilingual_v2" {
		t.Errorf("voice model = %q", cfg.Voice.Model)
	}
	if cfg.Auth.ExpirationHours != 24 {
		t.Errorf("token expiration = %d, want 24", cfg.Auth.ExpirationHours)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want env override", cfg.Database.Host)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q, want env override", cfg.Auth.JWTSecret)
	}
}

func TestGetDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "pw", DBName: "booking_system", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=postgres password=pw dbname=booking_system sslmode=disable"
	if got := dbCfg.GetDSN(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}

func TestGetAddr(t *testing.T) {
	serverCfg := ServerConfig{Host: "0.0.0.0", Port: 8000}
	if got := serverCfg.GetAddr(); got != "0.0.0.0:8000" {
		t.Errorf("server addr = %q", got)
	}

	redisCfg := RedisConfig{Host: "localhost", Port: 6379}
	if got := redisCfg.GetAddr(); got != "localhost:6379" {
		t.Errorf("redis addr = %q", got)
	}
}
