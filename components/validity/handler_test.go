package validity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardform/pkg/httputil"
)

func TestNewHandler_GetComputesValidUntil(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/valid-until?issued_date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	want := resultResponse{Data: resultPayload{
		Text:       "Gültig bis: 15.3.2029",
		IssuedDate: "2024-03-15",
		ValidUntil: "2029-03-15",
		Years:      5,
		Valid:      true,
	}}
	assertResponse(t, rec, want)
}

func TestNewHandler_PostFormWithMemberType(t *testing.T) {
	h := NewHandler()

	form := url.Values{"issued_date": {"15.03.2024"}, "member_type": {"EXTERN"}}
	req := httptest.NewRequest(http.MethodPost, "/api/valid-until", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	want := resultResponse{Data: resultPayload{
		Text:       "Gültig bis: 15.3.2025",
		IssuedDate: "2024-03-15",
		ValidUntil: "2025-03-15",
		Years:      1,
		Valid:      true,
	}}
	assertResponse(t, rec, want)
}

func TestNewHandler_InvalidDateStillAnswers(t *testing.T) {
	h := NewHandler(WithDateParam("issued"))

	req := httptest.NewRequest(http.MethodGet, "/api/valid-until?issued=", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	want := resultResponse{Data: resultPayload{
		Text:  "Gültig bis: Ungültiges Datum",
		Years: 5,
	}}
	assertResponse(t, rec, want)
}

func TestNewHandler_ManualValidity(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/valid-until?issued_date=2024-03-15&manual_validity=on", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertResponse(t, rec, resultResponse{Data: resultPayload{Years: 5, Manual: true}})
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(WithGuard(func(r *http.Request) error {
		return httputil.StatusError{Code: http.StatusUnauthorized}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/valid-until?issued_date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/valid-until", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestNewHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodHead, "/api/valid-until?issued_date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}

func assertResponse(t *testing.T, rec *httptest.ResponseRecorder, want resultResponse) {
	t.Helper()

	var got resultResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}
