package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"eduverse_backend/internals/configs"
)

func setupGuardedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/a/ping", AdminAuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAdminAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	app := setupGuardedApp(t)

	token, err := IssueAdminToken("jti-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminAuthMiddlewareAcceptsCookie(t *testing.T) {
	app := setupGuardedApp(t)

	token, err := IssueAdminToken("jti-2", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := setupGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/a/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	app := setupGuardedApp(t)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	app := setupGuardedApp(t)

	token, err := IssueAdminToken("jti-3", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthMiddlewareRejectsWrongScope(t *testing.T) {
	app := setupGuardedApp(t)

	claims := jwt.MapClaims{
		"scope": "student",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	app := setupGuardedApp(t)

	claims := jwt.MapClaims{
		"scope": "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
