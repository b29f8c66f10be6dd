package route

import (
	"github.com/gofiber/fiber/v2"

	"eduverse_backend/internals/features/auth/controller"
	middlewares "eduverse_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router) {
	unlockCtrl := controller.NewUnlockController()

	auth := api.Group("/auth")
	auth.Post("/admin/unlock", middlewares.UnlockRateLimiter(), unlockCtrl.Unlock) // 🔓 access gate
}
