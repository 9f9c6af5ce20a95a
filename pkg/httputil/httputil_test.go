package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath(t *testing.T) {
	cases := []struct {
		base, route, want string
	}{
		{"", "/api/valid-until", "/api/valid-until"},
		{"/", "api/valid-until", "/api/valid-until"},
		{"/admin", "/api/valid-until", "/admin/api/valid-until"},
		{"admin/", "/api/image-preview", "/admin/api/image-preview"},
		{" /members ", "", "/members/"},
	}
	for _, tc := range cases {
		if got := MountPath(tc.base, tc.route); got != tc.want {
			t.Fatalf("MountPath(%q, %q): want %q, got %q", tc.base, tc.route, tc.want, got)
		}
	}
}

func TestWriteGuardError_UsesStatusFromChain(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteGuardError(rec, fmt.Errorf("wrapped: %w", StatusError{Code: http.StatusUnauthorized}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	WriteGuardError(rec, errors.New("nope"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	WriteError(rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStatusError_Defaults(t *testing.T) {
	var err StatusError
	if err.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected zero code to map to 500")
	}
	if err.Error() != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("unexpected message %q", err.Error())
	}
	cause := errors.New("cause")
	if !errors.Is(StatusError{Code: 400, Err: cause}, cause) {
		t.Fatalf("expected StatusError to unwrap its cause")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]string{"text": "<b>"})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["text"] != "<b>" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestRegister_RequiresMux(t *testing.T) {
	if _, err := Register(nil, "validity", "", "/x", http.NotFoundHandler()); err == nil {
		t.Fatalf("expected error for nil mux")
	}
	mux := http.NewServeMux()
	pattern, err := Register(mux, "validity", "/admin", "/x", http.NotFoundHandler())
	if err != nil || pattern != "/admin/x" {
		t.Fatalf("unexpected register result %q, %v", pattern, err)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, http.MethodGet, http.MethodPost)
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != "GET, POST" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Header().Get("Allow"))
	}
}
