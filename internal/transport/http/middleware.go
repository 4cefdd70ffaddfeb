// internal/transport/http/middleware.go
package httptransport

import (
	"context"
	"net/http"
	"strings"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"
)

type contextKey string

const userContextKey contextKey = "registry.user"

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// RequireSession is the route guard for the wizard and dashboard routes. It
// resolves the bearer token, stores the user on the request context and
// rejects anything it cannot resolve with 401.
func RequireSession(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, stderrors.NewSessionNotFoundError())
				return
			}
			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user stored by RequireSession.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
