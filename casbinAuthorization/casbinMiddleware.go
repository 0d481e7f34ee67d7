package casbinAuthorization

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"booking_service/authorization"
	"booking_service/domain"

	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

const AnonymousRole = "anonymous"

func extractClaims(r *http.Request) (*domain.Claims, error) {
	bearer := r.Header.Get("Authorization")
	if bearer == "" {
		return nil, nil
	}

	bearerToken := strings.Split(bearer, "Bearer ")
	if len(bearerToken) != 2 {
		return nil, errors.New("invalid token format")
	}

	return authorization.ClaimsFromToken(bearerToken[1])
}

// CasbinMiddleware resolves the caller role from the bearer token, checks
// that a live session record still backs the token (logout kills it) and
// enforces the route policy. The resolved claims are put on the request
// context for the handlers.
func CasbinMiddleware(e *casbin.Enforcer, sessions domain.SessionCache, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			userRole := AnonymousRole

			claims, err := extractClaims(r)
			if err != nil {
				logger.Error("Unauthorized access attempt")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if claims != nil {
				_, err := sessions.GetSession(r.Context(), claims.Username)
				if err != nil {
					logger.WithField("username", claims.Username).Warn("No live session for token")
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				userRole = claims.Role
			}

			res, err := e.EnforceSafe(userRole, r.URL.Path, r.Method)
			if err != nil {
				logger.Error("Error enforcing authorization policy")
				http.Error(w, "unauthorized user", http.StatusUnauthorized)
				return
			}

			if !res {
				logger.Warn("Unauthorized access attempt: forbidden")
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			if claims != nil {
				ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
