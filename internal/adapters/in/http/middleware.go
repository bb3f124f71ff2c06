package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"backoffice/internal/pkg/jwtauth"
)

// claimsContextKey is where the middleware stores verified token claims on
// the echo context.
const claimsContextKey = "authClaims"

// JWTMiddleware verifies the bearer token on every request and stores its
// claims on the context. Requests without a valid token get 401.
func JWTMiddleware(issuer *jwtauth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return writeErrorResponse(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return writeErrorResponse(ctx, http.StatusUnauthorized, "invalid or expired token")
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// ClaimsFromContext returns the verified claims stored by JWTMiddleware.
// The zero value is returned on unauthenticated routes.
func ClaimsFromContext(ctx echo.Context) jwtauth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(jwtauth.Claims)
	return claims
}
