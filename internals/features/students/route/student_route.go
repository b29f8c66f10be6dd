package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/students/controller"
)

// 🌐 Public (self-service profile, keyed by the device-held student id)
func StudentPublicRoutes(api fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	profile := api.Group("/profile")
	profile.Get("/:id", studentCtrl.GetProfile)    // 🙋 read profile
	profile.Put("/:id", studentCtrl.UpdateProfile) // 🔄 save profile form
}

// 🔐 Admin console
func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	student := api.Group("/students")
	student.Get("/", studentCtrl.GetAllStudents)                 // 📄 list (?batch_id=&status=&page=)
	student.Post("/", studentCtrl.CreateStudent)                 // ➕ add student
	student.Patch("/:id/status", studentCtrl.UpdateStudentStatus) // 🔄 Active/Suspended toggle
}
