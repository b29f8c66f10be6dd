package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BatchRoutes "eduverse_backend/internals/features/batches/route"
	ContentRoutes "eduverse_backend/internals/features/contents/route"
	DashboardRoutes "eduverse_backend/internals/features/dashboard/route"
	SettingsRoutes "eduverse_backend/internals/features/settings/route"
	StudentRoutes "eduverse_backend/internals/features/students/route"
	SubjectRoutes "eduverse_backend/internals/features/subjects/route"
)

// ✅ Public routes, no token
// e.g. /api/public/batches
func PortalPublicRoutes(api fiber.Router, db *gorm.DB) {
	BatchRoutes.BatchPublicRoutes(api, db)
	SubjectRoutes.SubjectPublicRoutes(api, db)
	ContentRoutes.ContentPublicRoutes(api, db)
	SettingsRoutes.SettingsPublicRoutes(api, db)
	StudentRoutes.StudentPublicRoutes(api, db)
}

// ✅ Admin console routes (unlock token)
// e.g. /api/a/batches
func PortalAdminRoutes(api fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardAdminRoutes(api, db)
	BatchRoutes.BatchAdminRoutes(api, db)
	SubjectRoutes.SubjectAdminRoutes(api, db)
	ContentRoutes.ContentAdminRoutes(api, db)
	StudentRoutes.StudentAdminRoutes(api, db)
	SettingsRoutes.SettingsAdminRoutes(api, db)
}
