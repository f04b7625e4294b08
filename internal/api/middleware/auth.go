package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
	"github.com/abdelmajidelayachi/task-manager/internal/service/auth"
)

const bearerPrefix = "Bearer "

// UserDirectory looks up accounts by username during token
// authentication. *service.UserService satisfies it.
type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthMiddleware authenticates requests that carry a bearer token.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      UserDirectory
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, users UserDirectory) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate inspects the Authorization header and, when a valid
// bearer token is present, attaches the authenticated user to the
// request context. Requests without a bearer token pass through
// unauthenticated; rejecting them is RequireAuthentication's job.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		tokenString := strings.TrimPrefix(header, bearerPrefix)

		// Already authenticated earlier in the chain.
		if shared.GetUser(ctx) != nil {
			next.ServeHTTP(w, r)
			return
		}

		username, err := m.jwtService.ExtractUsername(ctx, tokenString)
		if err != nil {
			log.Debug("failed to extract username from token", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetByUsername(ctx, username)
		if err != nil {
			log.Debug("token subject has no matching account", "username", username)
			next.ServeHTTP(w, r)
			return
		}

		if !m.jwtService.ValidateToken(ctx, tokenString, user.Username) {
			log.Debug("token failed validation", "username", username)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(ctx, user)))
	})
}

// RequireAuthentication rejects requests that did not authenticate,
// writing the standard 401 envelope.
func (m *AuthMiddleware) RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shared.GetUser(r.Context()) == nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication Failed",
				"Full authentication is required to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
