package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "eduverse_backend/internals/features/auth/route"
	authMiddleware "eduverse_backend/internals/middlewares/auth"
	routeDetails "eduverse_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== ACCESS GATE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api)

	// ===================== PUBLIC (student app) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	routeDetails.PortalPublicRoutes(public, db)

	// ===================== ADMIN (unlock token required) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a", authMiddleware.AdminAuthMiddleware())
	routeDetails.PortalAdminRoutes(admin, db)
}
