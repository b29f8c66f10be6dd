package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/settings/controller"
)

// 🌐 Public (read on every app load: maintenance + enrollment gates, links)
func SettingsPublicRoutes(api fiber.Router, db *gorm.DB) {
	settingsCtrl := controller.NewSettingsController(db)

	api.Get("/settings", settingsCtrl.GetSettings)
}

// 🔐 Admin console
func SettingsAdminRoutes(api fiber.Router, db *gorm.DB) {
	settingsCtrl := controller.NewSettingsController(db)

	api.Get("/settings", settingsCtrl.GetSettings)
	api.Put("/settings", settingsCtrl.SaveSettings) // 💾 full overwrite
}
