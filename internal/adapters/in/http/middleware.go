package http

import (
	"net/http"
	"strings"

	"github.com/AbnerVital/7KDelivery/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// tokenCookieName matches the cookie set by the session issuer so browser
// clients work without an Authorization header.
const tokenCookieName = "session_token"

// AuthMiddleware verifies bearer or cookie tokens and places the verified
// claims into the echo context.
type AuthMiddleware struct {
	codec *auth.Codec
}

// NewAuthMiddleware creates middleware for the given token codec.
func NewAuthMiddleware(codec *auth.Codec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// RequireCustomer admits only tokens carrying the customer role.
func (m *AuthMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, auth.RoleCustomer)
}

// RequireAdmin admits only tokens carrying the admin role.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, auth.RoleAdmin)
}

// RequireAuthenticated admits any valid token regardless of role.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next)
}

func (m *AuthMiddleware) require(next echo.HandlerFunc, roles ...string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, ok := m.verify(ctx)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, errorJSON{Error: "authentication required"})
		}

		if len(roles) > 0 && !containsRole(roles, claims.Role) {
			return ctx.JSON(http.StatusUnauthorized, errorJSON{Error: "insufficient permissions"})
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// verify extracts and validates a token from the Authorization header or the
// session cookie.
func (m *AuthMiddleware) verify(ctx echo.Context) (auth.Claims, bool) {
	token := ""
	if header := ctx.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := ctx.Cookie(tokenCookieName); err == nil {
		token = cookie.Value
	}

	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := m.codec.Verify(token)
	if err != nil {
		return auth.Claims{}, false
	}

	return claims, true
}

// claimsFrom returns the claims set by the middleware, if any.
func claimsFrom(ctx echo.Context) (auth.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}

// optionalClaims verifies a token on an otherwise public route. An absent or
// invalid token simply means an anonymous caller.
func (m *AuthMiddleware) optionalClaims(ctx echo.Context) (auth.Claims, bool) {
	return m.verify(ctx)
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
