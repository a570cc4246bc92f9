package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	secureHeaders(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-XSS-Protection"); got != "1; mode=block" {
		t.Fatalf("expected %q, got %q", "1; mode=block", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "deny" {
		t.Fatalf("expected %q, got %q", "deny", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestMakeResponseJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	makeResponseJSON(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected %q, got %q", "application/json", got)
	}
}

func TestLogRequest(t *testing.T) {
	var buf bytes.Buffer
	app := &application{infoLog: log.New(&buf, "", 0)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)

	app.logRequest(okHandler()).ServeHTTP(rec, req)

	logged := buf.String()
	if !strings.Contains(logged, "GET") || !strings.Contains(logged, "/api/v1/items") {
		t.Fatalf("expected method and path in log line, got %q", logged)
	}
}

func TestRecoverPanic(t *testing.T) {
	app := &application{errorLog: log.New(io.Discard, "", 0)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	app.recoverPanic(panicky).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := rec.Header().Get("Connection"); got != "close" {
		t.Fatalf("expected Connection %q, got %q", "close", got)
	}
}
