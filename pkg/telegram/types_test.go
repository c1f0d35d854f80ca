package telegram

import "testing"

func TestMessageCommand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "/start"},
		{"  /help  ", "/help"},
		{"/start@solosync_bot", "/start"},
		{"/help@solosync_bot please", "/help"},
		{"need a logo by friday", ""},
		{"", ""},
	}

	for _, tt := range tests {
		m := &Message{Text: tt.text}
		if got := m.Command(); got != tt.want {
			t.Errorf("Command(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
