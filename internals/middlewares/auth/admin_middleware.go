// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eduverse_backend/internals/configs"
)

// AdminAuthMiddleware guards the admin console routes. The token is the
// short-lived session issued after the shared access-code unlock; there are
// no per-user accounts behind it.
func AdminAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if scope, _ := claims["scope"].(string); scope != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Admin scope required")
		}

		c.Locals("admin_token", tokenString)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		// cookie fallback
		if cookie := c.Cookies("admin_token"); cookie != "" {
			return cookie, nil
		}
		return "", fmt.Errorf("missing Authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("invalid Authorization header")
	}
	return parts[1], nil
}

// IssueAdminToken mints the admin session token after a successful unlock.
func IssueAdminToken(jti string, ttl time.Duration) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"scope": "admin",
		"jti":   jti,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
