package config

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example.com, https://b.example.com ,", []string{"https://a.example.com", "https://b.example.com"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/solosync")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ANALYZER_TIMEZONE", "Europe/Berlin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.RequestsPerMin != 120 {
		t.Errorf("rate limit = %d, want 120", cfg.RateLimit.RequestsPerMin)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"*"}) {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Postgres.DSN != "postgres://localhost/solosync" {
		t.Errorf("dsn = %q", cfg.Postgres.DSN)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("bot token = %q", cfg.Telegram.BotToken)
	}
	if cfg.GoogleCalendar.Timezone != "Europe/Berlin" {
		t.Errorf("calendar timezone = %q, want analyzer timezone", cfg.GoogleCalendar.Timezone)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("calendar id = %q", cfg.GoogleCalendar.CalendarID)
	}
}
