package handler_test

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Status string  `json:"status"`
		DB     string  `json:"db"`
		Uptime float64 `json:"uptime"`
	}
	decodeBody(t, w, &resp)
	if resp.Status != "ok" || resp.DB != "sqlite" {
		t.Fatalf("body = %+v", resp)
	}
}

func TestRootLiveness(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty body")
	}
}
