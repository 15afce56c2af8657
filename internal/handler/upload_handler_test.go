package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadStoresFile(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	content := []byte("\xff\xd8\xff\xe0 fake jpeg bytes")
	body, contentType := multipartUpload(t, "file", "photo.jpg", content)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success {
		t.Fatalf("body = %+v", resp)
	}
	// Relative disk paths come back absolutized against the request host.
	if !strings.HasPrefix(resp.URL, "http://") || !strings.Contains(resp.URL, "/uploads/file_") {
		t.Fatalf("url = %q", resp.URL)
	}
	if !strings.HasSuffix(resp.URL, ".jpg") {
		t.Fatalf("url lost extension: %q", resp.URL)
	}

	name := resp.URL[strings.LastIndex(resp.URL, "/")+1:]
	got, err := os.ReadFile(filepath.Join(s.cfg.Upload.Dir, name))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored bytes differ")
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	body, contentType := multipartUpload(t, "attachment", "photo.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "No file uploaded" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "photo.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUploadedFileIsServed(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	content := []byte("served bytes")
	body, contentType := multipartUpload(t, "file", "pic.png", content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d", w.Code)
	}
	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, w, &resp)

	path := resp.URL[strings.Index(resp.URL, "/uploads/"):]
	get := s.do(t, http.MethodGet, path, "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d", path, get.Code)
	}
	if !bytes.Equal(get.Body.Bytes(), content) {
		t.Fatalf("served bytes differ")
	}
}
