package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"mocar/internal/repository"
)

func validInquiry() map[string]string {
	return map[string]string{
		"name":        "Rakesh",
		"email":       "rakesh@example.com",
		"phone":       "9876543210",
		"inquiryType": "Car Rental",
		"message":     "Need an SUV for the weekend.",
	}
}

func TestContactSubmitSendsEmail(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/contact", "", validInquiry())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success || resp.Message != "Message sent successfully" {
		t.Fatalf("body = %+v", resp)
	}

	if len(s.mail.sent) != 1 {
		t.Fatalf("sent mails = %d, want 1", len(s.mail.sent))
	}
	m := s.mail.sent[0]
	if m.To != s.cfg.Admin.Email {
		t.Fatalf("mail to = %q, want admin address", m.To)
	}
	if !strings.Contains(m.Subject, "Rakesh") {
		t.Fatalf("subject = %q", m.Subject)
	}
	if !strings.Contains(m.Body, "9876543210") {
		t.Fatalf("body missing phone: %q", m.Body)
	}

	n, err := repository.NewMessageRepository(s.db).Count()
	if err != nil || n != 1 {
		t.Fatalf("stored messages = %d (err %v), want 1", n, err)
	}
}

func TestContactSubmitRejectsMissingFields(t *testing.T) {
	s := newTestServer(t)

	body := validInquiry()
	delete(body, "phone")
	w := s.do(t, http.MethodPost, "/api/contact", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Success || resp.Message != "Missing fields" {
		t.Fatalf("body = %+v", resp)
	}

	// Nothing got written before validation failed.
	if n, _ := repository.NewMessageRepository(s.db).Count(); n != 0 {
		t.Fatalf("stored messages = %d, want 0", n)
	}
	if len(s.mail.sent) != 0 {
		t.Fatalf("sent mails = %d, want 0", len(s.mail.sent))
	}
}

func TestContactSubmitEmailFailureStillPersists(t *testing.T) {
	s := newTestServer(t)
	s.mail.fail = true

	w := s.do(t, http.MethodPost, "/api/contact", "", validInquiry())
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success || resp.Message != "Message received (email pending verification)" {
		t.Fatalf("body = %+v", resp)
	}

	// The row landed even though the notification did not.
	if n, _ := repository.NewMessageRepository(s.db).Count(); n != 1 {
		t.Fatalf("stored messages = %d, want 1", n)
	}
}

func TestContactSubmitWithMailerDisabled(t *testing.T) {
	s := newTestServer(t)
	s.mail.enabled = false

	w := s.do(t, http.MethodPost, "/api/contact", "", validInquiry())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Message received (email disabled)" {
		t.Fatalf("message = %q", resp.Message)
	}
	if n, _ := repository.NewMessageRepository(s.db).Count(); n != 1 {
		t.Fatalf("stored messages = %d, want 1", n)
	}
}

func TestMessagesListAndDelete(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	s.do(t, http.MethodPost, "/api/contact", "", validInquiry())

	if w := s.do(t, http.MethodGet, "/api/messages", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list status = %d, want 401", w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/messages", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var rows []struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		InquiryType string `json:"inquiryType"`
		CreatedAt   string `json:"createdAt"`
	}
	decodeBody(t, w, &rows)
	if len(rows) != 1 || rows[0].Name != "Rakesh" || rows[0].InquiryType != "Car Rental" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].CreatedAt == "" {
		t.Fatalf("createdAt not set")
	}

	if w := s.do(t, http.MethodDelete, "/api/messages/"+itoa(rows[0].ID), token, nil); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = s.do(t, http.MethodGet, "/api/messages", token, nil)
	decodeBody(t, w, &rows)
	if len(rows) != 0 {
		t.Fatalf("rows after delete = %+v", rows)
	}
}
