package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eduverse_backend/internals/configs"
	"eduverse_backend/internals/features/auth/dto"
	authMiddleware "eduverse_backend/internals/middlewares/auth"
)

func setupUnlockApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.AdminAccessCode = "482915"
	configs.AdminAccessCodeHash = ""

	ctrl := NewUnlockController()
	app := fiber.New()
	app.Post("/auth/admin/unlock", ctrl.Unlock)
	return app
}

func unlockReq(t *testing.T, code string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{"access_code": code}))
	req := httptest.NewRequest("POST", "/auth/admin/unlock", &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUnlockIssuesAdminToken(t *testing.T) {
	app := setupUnlockApp(t)

	resp, err := app.Test(unlockReq(t, "482915"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.UnlockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	require.Equal(t, int((12 * 60 * 60)), body.ExpiresIn)

	// The minted token passes the admin gate.
	guarded := fiber.New()
	guarded.Get("/a/ping", authMiddleware.AdminAuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	req := httptest.NewRequest("GET", "/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	resp, err = guarded.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnlockRejectsWrongCode(t *testing.T) {
	app := setupUnlockApp(t)

	resp, err := app.Test(unlockReq(t, "000000"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUnlockRejectsNonNumericCode(t *testing.T) {
	app := setupUnlockApp(t)

	resp, err := app.Test(unlockReq(t, "letmein"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnlockPrefersHashWhenConfigured(t *testing.T) {
	app := setupUnlockApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("771122"), bcrypt.MinCost)
	require.NoError(t, err)
	configs.AdminAccessCodeHash = string(hash)
	defer func() { configs.AdminAccessCodeHash = "" }()

	// The hash wins over the plain code.
	resp, err := app.Test(unlockReq(t, "482915"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(unlockReq(t, "771122"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnlockLockedWhenNoCodeConfigured(t *testing.T) {
	app := setupUnlockApp(t)
	configs.AdminAccessCode = ""
	defer func() { configs.AdminAccessCode = "482915" }()

	resp, err := app.Test(unlockReq(t, "482915"), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
