package config

import "testing"

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gym?sslmode=disable")
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.CronSpecDailyRun != "0 9 * * *" {
		t.Errorf("CronSpecDailyRun = %q", cfg.CronSpecDailyRun)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Errorf("LogLevel = %q, Environment = %q", cfg.LogLevel, cfg.Environment)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadTelegramRequiresChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_TOKEN", "bot-token")
	t.Setenv("ADMIN_CHAT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for TELEGRAM_TOKEN without ADMIN_CHAT_ID")
	}

	t.Setenv("ADMIN_CHAT_ID", "12345")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AdminChatID != 12345 {
		t.Errorf("AdminChatID = %d", cfg.AdminChatID)
	}
}
