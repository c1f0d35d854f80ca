package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"solosync/pkg/telegram"
)

type recorder struct {
	mu   sync.Mutex
	last map[string]any
}

func (r *recorder) get(key string) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last[key]
}

func newTestBot(t *testing.T) (*telegram.Bot, *recorder) {
	t.Helper()
	rec := &recorder{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		rec.mu.Lock()
		rec.last = req
		rec.mu.Unlock()

		if strings.HasSuffix(r.URL.Path, "/setWebhook") || strings.HasSuffix(r.URL.Path, "/sendMessage") {
			field := "url"
			if strings.HasSuffix(r.URL.Path, "/sendMessage") {
				field = "text"
			}
			switch req[field] {
			case "cause_error":
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "bad request"}`))
			case "cause_500":
				w.WriteHeader(http.StatusInternalServerError)
			default:
				w.Write([]byte(`{"ok": true}`))
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(ts.Close)

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, rec
}

func TestSetWebhook(t *testing.T) {
	bot, last := newTestBot(t)
	ctx := context.Background()

	if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
		t.Fatalf("SetWebhook() error = %v", err)
	}
	if last.get("secret_token") != "s3cret" {
		t.Errorf("secret_token sent = %v", last.get("secret_token"))
	}

	if err := bot.SetWebhook(ctx, "cause_error", ""); err == nil || !strings.Contains(err.Error(), "bad request") {
		t.Errorf("expected description in error, got %v", err)
	}
	if err := bot.SetWebhook(ctx, "cause_500", ""); err == nil {
		t.Error("expected error on 500")
	}
}

func TestSendMessage(t *testing.T) {
	bot, last := newTestBot(t)
	ctx := context.Background()

	if err := bot.SendMessage(ctx, 42, "hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if last.get("chat_id") != float64(42) {
		t.Errorf("chat_id sent = %v", last.get("chat_id"))
	}
	if err := bot.SendMessage(ctx, 42, "cause_error"); err == nil {
		t.Error("expected error")
	}
	if err := bot.SendMessage(ctx, 42, "cause_500"); err == nil {
		t.Error("expected error on 500")
	}
}

func TestSendMessageCanceled(t *testing.T) {
	bot, _ := newTestBot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bot.SendMessage(ctx, 1, "hello"); err == nil {
		t.Error("expected error for canceled context")
	}
}
