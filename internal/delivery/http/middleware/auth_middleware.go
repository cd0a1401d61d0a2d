package middleware

import (
	"strings"

	deliverycontext "orla/internal/delivery/context"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// A missing session and an invalid one are distinct outcomes: the first asks
// the user to log in, the second to re-authenticate.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthRequired.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrAuthRequired.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WithDetails("invalid or expired token")
		}

		// Refresh tokens never authenticate a request directly.
		if claims.Type != "access" {
			return domainerrors.ErrInvalidToken.WithDetails("token is not an access token")
		}

		// Set user info on the context for handlers to use.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRoles, claims.Roles)

		// Propagate identity into context.Context for the service layer's
		// request-scoped logging.
		ctx := deliverycontext.WithRequestID(c.Request().Context(), deliverycontext.GetRequestID(c))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
