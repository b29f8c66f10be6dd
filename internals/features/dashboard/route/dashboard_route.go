package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/dashboard/controller"
)

// 🔐 Admin console
func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	dashboardCtrl := controller.NewDashboardController(db)

	api.Get("/dashboard", dashboardCtrl.GetStats) // 📊 stat cards
}
