package middleware

import (
	"net/http"

	"github.com/phrazzld/skillpilot-api/internal/api/shared"
	"github.com/phrazzld/skillpilot-api/internal/session"
)

// RequireLogin rejects requests with 401 unless the session flag is set, and
// adds the logged-in username to the request context otherwise.
func RequireLogin(state *session.State) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := state.Current()
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Login required")
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithUsername(r.Context(), username)))
		})
	}
}
