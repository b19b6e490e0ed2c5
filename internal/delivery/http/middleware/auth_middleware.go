package middleware

import (
	"context"
	"net/http"
	"strings"

	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/internal/domain/repository"
	"blood-donation-api/pkg/jwt"
	"blood-donation-api/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const userKey contextKey = "auth_user"

// AuthUser is the identity the authenticate stage resolves and attaches
// to the request context. The password hash is never loaded into it.
type AuthUser struct {
	ID    uuid.UUID
	Nom   string
	Email string
	Role  string
}

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	medecinRepo repository.MedecinRepository
	donneurRepo repository.DonneurRepository
}

func NewAuthMiddleware(
	jwtService *jwt.JWTService,
	medecinRepo repository.MedecinRepository,
	donneurRepo repository.DonneurRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		medecinRepo: medecinRepo,
		donneurRepo: donneurRepo,
	}
}

// Authenticate verifies the bearer token and resolves its subject from
// the identity table matching the token's role. Tokens are never
// proactively revoked: a deleted user's still-valid token fails at this
// lookup, not at signature verification.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.resolveSubject(r.Context(), claims)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve user")
			return
		}
		if user == nil {
			response.Unauthorized(w, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) resolveSubject(ctx context.Context, claims *jwt.Claims) (*AuthUser, error) {
	if claims.Role == entity.RoleMedecin {
		medecin, err := m.medecinRepo.FindByID(ctx, claims.UserID)
		if err != nil || medecin == nil {
			return nil, err
		}
		return &AuthUser{ID: medecin.ID, Nom: medecin.Nom, Email: medecin.Email, Role: entity.RoleMedecin}, nil
	}

	// "donneur" and "banque" both live in the donneurs table
	donneur, err := m.donneurRepo.FindByID(ctx, claims.UserID)
	if err != nil || donneur == nil {
		return nil, err
	}
	return &AuthUser{ID: donneur.ID, Nom: donneur.Nom, Email: donneur.Email, Role: claims.Role}, nil
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(userKey).(*AuthUser)
	return user, ok
}

// GetUserIDFromContext extracts the authenticated user's id from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

// GetRoleFromContext extracts the authenticated role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return "", false
	}
	return user.Role, true
}

// WithUser returns a context carrying the given user. Test helper.
func WithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}
