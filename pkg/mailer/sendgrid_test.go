package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendGridSend(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/mail/send" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(b, &gotPayload); err != nil {
			t.Errorf("payload not json: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewSendGrid("sg-key", "noreply@example.com")
	m.BaseURL = srv.URL
	if !m.Enabled() {
		t.Fatalf("Enabled() = false with key set")
	}
	if err := m.Send(context.Background(), "admin@example.com", "Hello", "<p>Hi</p>"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotAuth != "Bearer sg-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPayload["subject"] != "Hello" {
		t.Fatalf("subject = %v", gotPayload["subject"])
	}
	from, _ := gotPayload["from"].(map[string]interface{})
	if from["email"] != "noreply@example.com" {
		t.Fatalf("from = %v", gotPayload["from"])
	}
}

func TestSendGridErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad key"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewSendGrid("sg-key", "noreply@example.com")
	m.BaseURL = srv.URL
	if err := m.Send(context.Background(), "admin@example.com", "Hello", "body"); err == nil {
		t.Fatalf("Send returned nil on 401")
	}
}

func TestSendGridDisabled(t *testing.T) {
	m := NewSendGrid("", "noreply@example.com")
	if m.Enabled() {
		t.Fatalf("Enabled() = true without key")
	}
	if err := m.Send(context.Background(), "a@b.c", "s", "b"); err != ErrDisabled {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
}
