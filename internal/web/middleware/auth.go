package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// GetSession returns the session restored for this request. It is the
// zero (logged out) session when none was restored.
func GetSession(ctx context.Context) session.Session {
	sess, _ := ctx.Value(sessionContextKey).(session.Session)
	return sess
}

// GetUser returns the signed-in user, or nil
func GetUser(ctx context.Context) *model.User {
	return GetSession(ctx).User
}

// Session restores the client's session from storage. Requires ClientID to
// run first.
func Session(store *session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Restore(r.Context(), GetClientID(r.Context()))
			if err != nil {
				logger.Error("restore session", slog.String("error", err.Error()))
				ErrorPage(w, http.StatusServiceUnavailable)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects visitors without a valid session to the login page
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetSession(r.Context()).IsAuthenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
