package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vangoframework/formkit/internal/session"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the session into the request context.
// Visitors without a usable cookie get a fresh session bound to a new page id.
func Session(store *session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r)
			if err != nil {
				if !errors.Is(err, http.ErrNoCookie) {
					logger.Debug("discarding session", "error", err)
				}
				data = &session.Data{PageID: uuid.New()}
				if err := store.Set(w, data); err != nil {
					logger.Error("failed to set session", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *session.Data {
	data, ok := ctx.Value(SessionContextKey).(*session.Data)
	if !ok {
		return nil
	}
	return data
}
