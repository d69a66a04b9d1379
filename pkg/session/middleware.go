package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/skulabel/pkg/logger"
)

// Name is the session cookie name.
const Name = "skulabel_session"

// Middleware loads the caller's session once per request and injects it into
// the request context. A session that cannot be loaded is replaced by a fresh one.
//
// After this middleware, handlers can safely call session.FromCtx(r.Context()).
func Middleware(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.Get(r, Name)
			if err != nil {
				log.WarnContext(r.Context(), "session load failed, starting fresh", "error", err)
				if s == nil {
					s = sessions.NewSession(store, Name)
					s.IsNew = true
				}
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}
