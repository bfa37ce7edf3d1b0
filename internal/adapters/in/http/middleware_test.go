package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, codec *auth.Codec, subjectID, role string) string {
	t.Helper()

	token, err := codec.Sign(auth.Claims{SubjectID: subjectID, Role: role})
	require.NoError(t, err)
	return token
}

func invokeProtected(middleware *AuthMiddleware, wrap func(echo.HandlerFunc) echo.HandlerFunc, configure func(*http.Request)) (*httptest.ResponseRecorder, auth.Claims) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	configure(req)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var seen auth.Claims
	handler := wrap(func(c echo.Context) error {
		seen, _ = claimsFrom(c)
		return c.NoContent(http.StatusOK)
	})
	_ = handler(ctx)

	return rec, seen
}

func TestAuthMiddleware(t *testing.T) {
	codec := auth.NewCodec("test-secret")
	middleware := NewAuthMiddleware(codec)

	t.Run("should accept a bearer token and expose claims", func(t *testing.T) {
		token := signToken(t, codec, "customer-1", auth.RoleCustomer)

		rec, claims := invokeProtected(middleware, middleware.RequireCustomer, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "customer-1", claims.SubjectID)
		assert.Equal(t, auth.RoleCustomer, claims.Role)
	})

	t.Run("should accept a cookie token", func(t *testing.T) {
		token := signToken(t, codec, "customer-2", auth.RoleCustomer)

		rec, claims := invokeProtected(middleware, middleware.RequireCustomer, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "customer-2", claims.SubjectID)
	})

	t.Run("should reject a missing token", func(t *testing.T) {
		rec, _ := invokeProtected(middleware, middleware.RequireCustomer, func(*http.Request) {})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		otherCodec := auth.NewCodec("different-secret")
		token := signToken(t, otherCodec, "customer-1", auth.RoleCustomer)

		rec, _ := invokeProtected(middleware, middleware.RequireCustomer, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		expired, err := codec.Sign(auth.Claims{
			SubjectID: "customer-1",
			Role:      auth.RoleCustomer,
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		rec, _ := invokeProtected(middleware, middleware.RequireCustomer, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+expired)
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a customer on an admin route", func(t *testing.T) {
		token := signToken(t, codec, "customer-1", auth.RoleCustomer)

		rec, _ := invokeProtected(middleware, middleware.RequireAdmin, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should admit any valid role on an authenticated route", func(t *testing.T) {
		for _, role := range []string{auth.RoleCustomer, auth.RoleAdmin} {
			token := signToken(t, codec, "subject", role)

			rec, _ := invokeProtected(middleware, middleware.RequireAuthenticated, func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			})

			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
