package controller

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eduverse_backend/internals/configs"
	"eduverse_backend/internals/features/auth/dto"
	helper "eduverse_backend/internals/helpers"
	authMiddleware "eduverse_backend/internals/middlewares/auth"
)

var validateUnlock = validator.New()

const adminTokenTTL = 12 * time.Hour

type UnlockController struct{}

func NewUnlockController() *UnlockController {
	return &UnlockController{}
}

// =============================
// 🔓 Admin Unlock
// =============================
// The access gate: one shared numeric code for the whole admin console. Not a
// security boundary — a successful compare just mints a short-lived session
// token so the admin screens don't re-send the code on every call.
func (ctrl *UnlockController) Unlock(c *fiber.Ctx) error {
	var body dto.UnlockRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUnlock.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if !accessCodeMatches(body.AccessCode) {
		return fiber.NewError(fiber.StatusUnauthorized, "Wrong access code")
	}

	token, err := authMiddleware.IssueAdminToken(uuid.NewString(), adminTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(dto.UnlockResponse{
		Token:     token,
		ExpiresIn: int(adminTokenTTL.Seconds()),
	})
}

func accessCodeMatches(code string) bool {
	if hash := configs.AdminAccessCodeHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
	}
	expected := configs.AdminAccessCode
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1
}
