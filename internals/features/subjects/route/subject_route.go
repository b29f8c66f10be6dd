package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/subjects/controller"
)

// 🌐 Public (student app)
func SubjectPublicRoutes(api fiber.Router, db *gorm.DB) {
	subjectCtrl := controller.NewSubjectController(db)

	subject := api.Group("/subjects")
	subject.Get("/", subjectCtrl.GetAllSubjects)   // 📄 list (optional ?batch_id=)
	subject.Get("/:id", subjectCtrl.GetSubjectByID) // 🔍 subject detail
}

// 🔐 Admin console
func SubjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	subjectCtrl := controller.NewSubjectController(db)

	subject := api.Group("/subjects")
	subject.Get("/", subjectCtrl.GetAllSubjects)
	subject.Get("/:id", subjectCtrl.GetSubjectByID)
	subject.Post("/", subjectCtrl.CreateSubject)      // ➕ create subject
	subject.Put("/:id", subjectCtrl.UpdateSubject)    // 🔄 update subject
	subject.Delete("/:id", subjectCtrl.DeleteSubject) // 🗑️ delete subject (cascade content)
}
