package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func resolveThroughMiddleware(t *testing.T, req *http.Request) string {
	t.Helper()
	var got string
	h := UserID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserIDFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestUserIDFromHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/entitlements", nil)
	req.Header.Set("x-user-id", "alice")

	if got := resolveThroughMiddleware(t, req); got != "alice" {
		t.Fatalf("user id mismatch: got %q want %q", got, "alice")
	}
}

func TestUserIDFromQueryParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/entitlements?userId=bob", nil)

	if got := resolveThroughMiddleware(t, req); got != "bob" {
		t.Fatalf("user id mismatch: got %q want %q", got, "bob")
	}
}

func TestUserIDHeaderWinsOverQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/entitlements?userId=bob", nil)
	req.Header.Set("x-user-id", "alice")

	if got := resolveThroughMiddleware(t, req); got != "alice" {
		t.Fatalf("user id mismatch: got %q want %q", got, "alice")
	}
}

func TestUserIDFallsBackToGuest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/entitlements", nil)

	if got := resolveThroughMiddleware(t, req); got != GuestUserID {
		t.Fatalf("user id mismatch: got %q want %q", got, GuestUserID)
	}
}

func TestUserIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := UserIDFromContext(req.Context()); got != GuestUserID {
		t.Fatalf("expected guest fallback, got %q", got)
	}
}
