package middleware

import (
	"context"
	"net/http"
)

type sessionValidator interface {
	Validate(ctx context.Context, token string) error
}

// Auth returns middleware that requires a live session cookie. Requests
// without one, or with a token that no longer maps to a live session, get
// 401 and never reach the handler.
func Auth(validator sessionValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}
			if err := validator.Validate(r.Context(), cookie.Value); err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
