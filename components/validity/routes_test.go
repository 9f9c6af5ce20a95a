package validity

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/members"); got != "/members/api/valid-until" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("members/", WithRoutePath("gueltigkeit")); got != "/members/gueltigkeit" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithYears(2), WithPolicy(nil))

	pattern, err := c.RegisterRoutes(mux, "/members")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/members/api/valid-until" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?issued_date=2024-03-15&member_type=EXTERN", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if res := c.Calculate(Request{IssuedDate: "2024-03-15", MemberType: "EXTERN"}); res.Text != "Gültig bis: 15.3.2026" {
		t.Fatalf("expected component options to apply, got %q", res.Text)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for missing mux")
	}
}
