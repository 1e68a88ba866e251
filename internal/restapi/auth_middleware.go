package restapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// authenticatedUser carries the identity extracted from a bearer token.
type authenticatedUser struct {
	ID       int64
	Username string
	Admin    bool
}

// requireUser wraps a handler so it only runs with a valid bearer token.
// The authenticated user is placed on the request context.
func (api *RestAPI) requireUser(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			api.sendUnauthorized(w, r)
			return
		}

		claims, err := api.Auth.ValidateToken(token)
		if err != nil {
			api.sendUnauthorized(w, r)
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			api.sendUnauthorized(w, r)
			return
		}

		user := authenticatedUser{
			ID:       userID,
			Username: claims.Username,
			Admin:    claims.Admin,
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// userFromContext returns the authenticated user set by requireUser.
func userFromContext(ctx context.Context) (authenticatedUser, bool) {
	user, ok := ctx.Value(userContextKey).(authenticatedUser)
	return user, ok
}
