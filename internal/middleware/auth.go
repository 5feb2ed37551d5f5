package middleware

import (
	stderrors "errors"
	"strings"

	"courtside/internal/config"
	"courtside/internal/errors"
	"courtside/internal/handlers"
	"courtside/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that validates portal-issued JWTs. Tokens
// are signed by the external identity provider; this API only verifies them
// against the configured public key.
func RequireAuth(portalConfig *config.PortalConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, err := extractBearerToken(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims := &models.PortalClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return portalConfig.PublicKey, nil
			}, jwt.WithIssuer(portalConfig.Issuer))
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			if !token.Valid {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if claims.Role == models.RoleClient {
				clientID, err := uuid.Parse(claims.ClientID)
				if err != nil {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid client ID in token"))
				}
				c.Set("client_id", clientID)
			}

			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("is_admin", claims.Role == models.RoleAdmin)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires a specific role
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get("user_role").(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User role not found in token"))
			}

			for _, role := range requiredRoles {
				if userRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireStaff requires a coach or admin role
func RequireStaff() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin, models.RoleCoach)
}

// RequireClientAccess restricts the client role to its own billing account.
// Staff tokens pass through for any client.
func RequireClientAccess(paramName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, _ := c.Get("user_role").(string)
			if userRole == models.RoleAdmin || userRole == models.RoleCoach {
				return next(c)
			}

			tokenClientID, ok := c.Get("client_id").(uuid.UUID)
			if !ok {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			pathClientID, err := uuid.Parse(c.Param(paramName))
			if err != nil || pathClientID != tokenClientID {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			return next(c)
		}
	}
}

// extractBearerToken pulls the token out of an Authorization header
func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", jwt.ErrTokenMalformed
	}
	return parts[1], nil
}
