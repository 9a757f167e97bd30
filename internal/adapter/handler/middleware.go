package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey string

const sessionContextKey contextKey = "cart_session"

const (
	cartSessionCookie  = "cart_session"
	adminSessionCookie = "admin_session"
)

// withCartSession ensures every storefront request carries a cart
// session id, minting one on first contact. The id travels in a cookie
// and in the request context.
func withCartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var session string
		if cookie, err := r.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
			session = cookie.Value
		} else {
			session = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     cartSessionCookie,
				Value:    session,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func cartSession(r *http.Request) string {
	if session, ok := r.Context().Value(sessionContextKey).(string); ok {
		return session
	}
	return ""
}

// adminToken extracts the admin session token from the Authorization
// header or the admin cookie.
func adminToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie(adminSessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// requireAdmin closes every admin route until the gate is open for the
// request's token.
func (h *AdminHandler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := adminToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ok, err := h.admin.Authenticated(r.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session check failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next(w, r)
	}
}

// logRequests emits one structured event per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}
