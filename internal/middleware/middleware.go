package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/auth"
	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/utils"
)

type userKey struct{}

// Auth is the bearer authorization gate for user-scoped endpoints. A missing
// credential is 403, an invalid, expired or wrong-kind one is 401. The user
// record is re-read on every request: an access token whose subject was
// deleted must stop working immediately, so freshness wins over caching here.
func Auth(tokens *auth.TokenHandler, users models.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Printf("Middleware: missing or invalid Authorization header")
				utils.WriteJSONError(w, http.StatusForbidden, "Not authenticated")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := tokens.Parse(tokenString, constants.TokenTypeAccess)
			if err != nil {
				log.Printf("Middleware: invalid token: %v", err)
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					log.Printf("Middleware: token subject %d no longer exists", userID)
					utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
					return
				}
				log.Printf("Middleware: failed to resolve user %d: %v", userID, err)
				utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the resolved authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func GetUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userKey{}).(models.User)
	return user, ok
}
