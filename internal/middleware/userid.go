package middleware

import (
	"context"
	"net/http"
	"strings"
)

const userIDKey contextKey = "user_id"

// GuestUserID is the identity assumed when the caller supplies none.
const GuestUserID = "guest"

// UserID resolves the caller identity from the x-user-id header, then the
// userId query parameter, falling back to the guest identity. There is no
// token auth in this service; the id is a caller-asserted handle used for
// plan resolution and usage metering.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("x-user-id"))
		if id == "" {
			id = strings.TrimSpace(r.URL.Query().Get("userId"))
		}
		if id == "" {
			id = GuestUserID
		}
		ctx := context.WithValue(r.Context(), userIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the resolved user id, defaulting to guest.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok && v != "" {
		return v
	}
	return GuestUserID
}
