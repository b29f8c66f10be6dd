package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/settings/dto"
	"eduverse_backend/internals/features/settings/model"
	helper "eduverse_backend/internals/helpers"
)

var validateSettings = validator.New()

const settingsCacheKey = "eduverse:settings"
const settingsCacheTTL = 60 * time.Second

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// =============================
// 📄 Get Settings
// =============================
// Read on every app load: serves from cache when Redis is configured, falls
// back to the hardcoded default when the singleton row does not exist.
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if cached, ok := helper.CacheGet(ctx, settingsCacheKey); ok {
		var resp dto.SettingsResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return c.JSON(&resp)
		}
	}

	var settings model.AppSettingsModel
	err := ctrl.DB.First(&settings, "settings_id = ?", constants.AppSettingsID).Error
	var resp *dto.SettingsResponse
	switch {
	case err == nil:
		resp = dto.ToSettingsResponse(&settings)
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp = dto.DefaultSettingsResponse()
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve settings")
	}

	if raw, err := json.Marshal(resp); err == nil {
		helper.CacheSet(ctx, settingsCacheKey, string(raw), settingsCacheTTL)
	}
	return c.JSON(resp)
}

// =============================
// 💾 Save Settings (full overwrite)
// =============================
func (ctrl *SettingsController) SaveSettings(c *fiber.Ctx) error {
	var body dto.SaveSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSettings.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := body.ToModel()
	// Upsert the singleton: the whole row is replaced, never merged.
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "settings_id"}},
		UpdateAll: true,
	}).Create(settings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save settings")
	}

	helper.CacheDel(c.UserContext(), settingsCacheKey)

	return helper.Success(c, "Settings saved", dto.ToSettingsResponse(settings))
}
