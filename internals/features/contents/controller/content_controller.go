package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/contents/dto"
	"eduverse_backend/internals/features/contents/model"
	subjectModel "eduverse_backend/internals/features/subjects/model"
	helper "eduverse_backend/internals/helpers"
)

var validateContent = validator.New()

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// =============================
// 📄 Get Content (grouped by type)
// =============================
// Fetches the flat collection (optionally filtered by subject) and reshapes
// it into the {lectures, notes, dpps} view.
func (ctrl *ContentController) GetGroupedContent(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ContentItemModel{})
	if subjectID := c.Query("subject_id"); subjectID != "" {
		q = q.Where("content_subject_id = ?", subjectID)
	}

	var items []model.ContentItemModel
	if err := q.Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	return c.JSON(dto.GroupByType(items))
}

// =============================
// 📄 Admin list (flat, paginated, optional type filter)
// =============================
func (ctrl *ContentController) GetAllContentAdmin(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ContentItemModel{})
	if contentType := c.Query("type"); contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		q = q.Where("content_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count content")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "content_created_at",
		"title":      "content_title",
		"date":       "content_date",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Invalid sort")
	}

	var items []model.ContentItemModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	result := make([]*dto.ContentItemResponse, 0, len(items))
	for i := range items {
		result = append(result, dto.ToContentItemResponse(&items[i]))
	}

	return c.JSON(fiber.Map{
		"data": result,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// ➕ Add Content (+1 topic count)
// =============================
// Insert and counter bump share one transaction; the increment is plain SQL
// arithmetic, not read-modify-write, so concurrent adds cannot lose updates.
func (ctrl *ContentController) CreateContent(c *fiber.Ctx) error {
	var body dto.CreateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	item := body.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if item.ContentSubjectID != nil && *item.ContentSubjectID != "" {
			return tx.Model(&subjectModel.SubjectModel{}).
				Where("subject_id = ?", *item.ContentSubjectID).
				Update("subject_topic_count", gorm.Expr("subject_topic_count + 1")).Error
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create content")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToContentItemResponse(item))
}

// =============================
// 🔄 Update Content (partial)
// =============================
func (ctrl *ContentController) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.ContentItemModel{}).Where("content_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update content")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Content not found")
	}

	var item model.ContentItemModel
	if err := ctrl.DB.First(&item, "content_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve content")
	}
	return c.JSON(dto.ToContentItemResponse(&item))
}

// =============================
// 🖇️ Upload embedded file
// =============================
// Stores an uploaded file (e.g. a PDF note) as a data URI on the item.
func (ctrl *ContentController) UploadContentFile(c *fiber.Ctx) error {
	id := c.Params("id")

	file, err := c.FormFile("content_file")
	if err != nil || file == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing content file")
	}

	dataURI, err := helper.FileToDataURI(file)
	if err != nil {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}

	res := ctrl.DB.Model(&model.ContentItemModel{}).
		Where("content_id = ?", id).
		Update("content_url", dataURI)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store file")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Content not found")
	}

	return helper.Success(c, "File uploaded", fiber.Map{"content_id": id})
}

// =============================
// 🗑️ Delete Content (-1 topic count, floored at 0)
// =============================
// Reads the item for its subject reference, then decrements and deletes in
// one transaction. The WHERE guard keeps the counter from going negative.
func (ctrl *ContentController) DeleteContent(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var item model.ContentItemModel
		if err := tx.First(&item, "content_id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.ContentItemModel{}, "content_id = ?", id).Error; err != nil {
			return err
		}

		if item.ContentSubjectID != nil && *item.ContentSubjectID != "" {
			return tx.Model(&subjectModel.SubjectModel{}).
				Where("subject_id = ? AND subject_topic_count > 0", *item.ContentSubjectID).
				Update("subject_topic_count", gorm.Expr("subject_topic_count - 1")).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Content not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete content")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
