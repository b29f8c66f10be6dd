package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/students/dto"
	"eduverse_backend/internals/features/students/model"
	helper "eduverse_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =============================
// 📄 Get All Students (paginated)
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.StudentModel{})
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("student_batch_id = ?", batchID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
		"join_date":  "student_join_date",
		"progress":   "student_progress",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Invalid sort")
	}

	var students []model.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	result := make([]*dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, dto.ToStudentResponse(&students[i]))
	}

	return c.JSON(fiber.Map{
		"data": result,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// ➕ Add Student
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	student := body.ToModel()
	if student.StudentJoinDate == "" {
		student.StudentJoinDate = time.Now().Format("2006-01-02")
	}
	if err := ctrl.DB.Create(student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToStudentResponse(student))
}

// =============================
// 🔄 Toggle Status (Active/Suspended)
// =============================
func (ctrl *StudentController) UpdateStudentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStudentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_status", body.StudentStatus)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Status updated", fiber.Map{
		"student_id":     id,
		"student_status": body.StudentStatus,
	})
}

// =============================
// 🙋 Self-service profile
// =============================
func (ctrl *StudentController) GetProfile(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve profile")
	}

	return c.JSON(dto.ToStudentResponse(&student))
}

func (ctrl *StudentController) UpdateProfile(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).Where("student_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve profile")
	}
	return c.JSON(dto.ToStudentResponse(&student))
}
