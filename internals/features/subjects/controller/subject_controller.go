package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentModel "eduverse_backend/internals/features/contents/model"
	"eduverse_backend/internals/features/subjects/dto"
	"eduverse_backend/internals/features/subjects/model"
	helper "eduverse_backend/internals/helpers"
)

var validateSubject = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// =============================
// 📄 Get Subjects (optionally by batch)
// =============================
func (ctrl *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.SubjectModel{})
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("subject_batch_id = ?", batchID)
	}

	var subjects []model.SubjectModel
	if err := q.Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}

	result := make([]*dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, dto.ToSubjectResponse(&subjects[i]))
	}
	return c.JSON(result)
}

// =============================
// 🔍 Get Subject By ID
// =============================
func (ctrl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve subject")
	}

	return c.JSON(dto.ToSubjectResponse(&subject))
}

// =============================
// ➕ Create Subject
// =============================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	subject := body.ToModel()
	if err := ctrl.DB.Create(subject).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToSubjectResponse(subject))
}

// =============================
// 🔄 Update Subject (partial)
// =============================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.SubjectModel{}).Where("subject_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve subject")
	}
	return c.JSON(dto.ToSubjectResponse(&subject))
}

// =============================
// 🗑️ Delete Subject (cascade content)
// =============================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.SubjectModel{}, "subject_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&contentModel.ContentItemModel{}, "content_subject_id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
