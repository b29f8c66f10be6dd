package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/batches/dto"
	"eduverse_backend/internals/features/batches/model"
	contentModel "eduverse_backend/internals/features/contents/model"
	subjectModel "eduverse_backend/internals/features/subjects/model"
	helper "eduverse_backend/internals/helpers"
)

var validateBatch = validator.New()

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

// =============================
// 📄 Get All Batches
// =============================
func (ctrl *BatchController) GetAllBatches(c *fiber.Ctx) error {
	var batches []model.BatchModel
	if err := ctrl.DB.Find(&batches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve batches")
	}

	result := make([]*dto.BatchResponse, 0, len(batches))
	for i := range batches {
		result = append(result, dto.ToBatchResponse(&batches[i]))
	}
	return c.JSON(result)
}

// =============================
// 🔍 Get Batch By ID
// =============================
func (ctrl *BatchController) GetBatchByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var batch model.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve batch")
	}

	return c.JSON(dto.ToBatchResponse(&batch))
}

// =============================
// ➕ Create Batch
// =============================
func (ctrl *BatchController) CreateBatch(c *fiber.Ctx) error {
	var body dto.CreateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBatch.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	batch := body.ToModel()
	if err := ctrl.DB.Create(batch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create batch")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToBatchResponse(batch))
}

// =============================
// 🔄 Update Batch (partial)
// =============================
func (ctrl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBatch.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Discount ≤ original must hold across the merged document, so a price
	// change needs the current row.
	if body.BatchOriginalPrice != nil || body.BatchDiscountPrice != nil {
		var current model.BatchModel
		if err := ctrl.DB.First(&current, "batch_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Batch not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve batch")
		}
		original := current.BatchOriginalPrice
		discount := current.BatchDiscountPrice
		if body.BatchOriginalPrice != nil {
			original = *body.BatchOriginalPrice
		}
		if body.BatchDiscountPrice != nil {
			discount = *body.BatchDiscountPrice
		}
		if discount > original {
			return fiber.NewError(fiber.StatusBadRequest, "Discount price cannot exceed original price")
		}
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.BatchModel{}).Where("batch_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update batch")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Batch not found")
	}

	var batch model.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve batch")
	}
	return c.JSON(dto.ToBatchResponse(&batch))
}

// =============================
// 🖼️ Upload Banner
// =============================
func (ctrl *BatchController) UploadBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	file, err := c.FormFile("batch_banner_image")
	if err != nil || file == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing banner image file")
	}

	dataURI, err := helper.ImageToWebpDataURI(file)
	if err != nil {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}

	res := ctrl.DB.Model(&model.BatchModel{}).
		Where("batch_id = ?", id).
		Update("batch_banner_image", dataURI)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store banner")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Batch not found")
	}

	return helper.Success(c, "Banner uploaded", fiber.Map{"batch_id": id})
}

// =============================
// 🗑️ Delete Batch (cascade)
// =============================
// A batch owns its subjects and, through them, their content. All three go
// in one transaction.
func (ctrl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.BatchModel{}, "batch_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var subjectIDs []string
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_batch_id = ?", id).
			Pluck("subject_id", &subjectIDs).Error; err != nil {
			return err
		}
		if len(subjectIDs) > 0 {
			if err := tx.Delete(&contentModel.ContentItemModel{}, "content_subject_id IN ?", subjectIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&subjectModel.SubjectModel{}, "subject_id IN ?", subjectIDs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete batch")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
