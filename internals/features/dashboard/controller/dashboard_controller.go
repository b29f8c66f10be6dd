package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "eduverse_backend/internals/features/batches/model"
	contentModel "eduverse_backend/internals/features/contents/model"
	studentModel "eduverse_backend/internals/features/students/model"
	subjectModel "eduverse_backend/internals/features/subjects/model"
	helper "eduverse_backend/internals/helpers"

	"eduverse_backend/internals/constants"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =============================
// 📊 Admin Dashboard Stats
// =============================
// The four stat cards on the admin landing page.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var totalStudents, activeBatches, lecturesUploaded, subjectsCreated int64

	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}
	if err := ctrl.DB.Model(&batchModel.BatchModel{}).
		Where("batch_status = ?", constants.BatchStatusActive).
		Count(&activeBatches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count batches")
	}
	if err := ctrl.DB.Model(&contentModel.ContentItemModel{}).
		Where("content_type = ?", constants.ContentTypeLecture).
		Count(&lecturesUploaded).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count lectures")
	}
	if err := ctrl.DB.Model(&subjectModel.SubjectModel{}).Count(&subjectsCreated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}

	return helper.Success(c, "Dashboard stats", fiber.Map{
		"total_students":    totalStudents,
		"active_batches":    activeBatches,
		"lectures_uploaded": lecturesUploaded,
		"subjects_created":  subjectsCreated,
	})
}
