package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/contents/controller"
)

// 🌐 Public (subject dashboard)
func ContentPublicRoutes(api fiber.Router, db *gorm.DB) {
	contentCtrl := controller.NewContentController(db)

	content := api.Group("/contents")
	content.Get("/", contentCtrl.GetGroupedContent) // 📄 grouped view (optional ?subject_id=)
}

// 🔐 Admin console
func ContentAdminRoutes(api fiber.Router, db *gorm.DB) {
	contentCtrl := controller.NewContentController(db)

	content := api.Group("/contents")
	content.Get("/", contentCtrl.GetAllContentAdmin)        // 📄 flat list (?type=&subject_id=&page=)
	content.Post("/", contentCtrl.CreateContent)            // ➕ add content (+1 topic count)
	content.Put("/:id", contentCtrl.UpdateContent)          // 🔄 update content
	content.Put("/:id/file", contentCtrl.UploadContentFile) // 🖇️ embed uploaded file
	content.Delete("/:id", contentCtrl.DeleteContent)       // 🗑️ delete content (-1 topic count)
}
