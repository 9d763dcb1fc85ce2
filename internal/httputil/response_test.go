package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondErrorWithExtras(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorWithExtras(rec, http.StatusNotFound, "resource not found", map[string]any{
		"redirect": "/t/acme/documents",
		"status":   999,
	})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %s, want application/problem+json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["redirect"] != "/t/acme/documents" {
		t.Errorf("redirect = %v, want /t/acme/documents", body["redirect"])
	}
	if body["status"] != float64(http.StatusNotFound) {
		t.Errorf("status member = %v, extras must not override it", body["status"])
	}
	if body["title"] != "Not Found" {
		t.Errorf("title = %v, want Not Found", body["title"])
	}
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
