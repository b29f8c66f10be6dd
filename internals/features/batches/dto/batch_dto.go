package dto

import (
	"eduverse_backend/internals/features/batches/model"
	helper "eduverse_backend/internals/helpers"
)

// ============================
// Request DTO
// ============================

type CreateBatchRequest struct {
	BatchID            string   `json:"batch_id"` // optional; generated when empty
	BatchName          string   `json:"batch_name" validate:"required,min=3"`
	BatchClassLevel    string   `json:"batch_class_level" validate:"required,oneof='Class 9' 'Class 10' 'Class 11'"`
	BatchOriginalPrice int      `json:"batch_original_price" validate:"gte=0"`
	BatchDiscountPrice int      `json:"batch_discount_price" validate:"gte=0,ltefield=BatchOriginalPrice"`
	BatchDescription   string   `json:"batch_description"`
	BatchTeachers      []string `json:"batch_teachers"`
	BatchGradient      string   `json:"batch_gradient"`
	BatchStatus        string   `json:"batch_status" validate:"omitempty,oneof=Active Inactive"`
	BatchStudentCount  int      `json:"batch_student_count" validate:"gte=0"`
}

// UpdateBatchRequest carries only the fields present in the payload; nil
// pointers are stripped before the partial update hits the store.
type UpdateBatchRequest struct {
	BatchName          *string   `json:"batch_name" validate:"omitempty,min=3"`
	BatchClassLevel    *string   `json:"batch_class_level" validate:"omitempty,oneof='Class 9' 'Class 10' 'Class 11'"`
	BatchOriginalPrice *int      `json:"batch_original_price" validate:"omitempty,gte=0"`
	BatchDiscountPrice *int      `json:"batch_discount_price" validate:"omitempty,gte=0"`
	BatchDescription   *string   `json:"batch_description"`
	BatchTeachers      *[]string `json:"batch_teachers"`
	BatchGradient      *string   `json:"batch_gradient"`
	BatchStatus        *string   `json:"batch_status" validate:"omitempty,oneof=Active Inactive"`
	BatchStudentCount  *int      `json:"batch_student_count" validate:"omitempty,gte=0"`
}

func (r *UpdateBatchRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	helper.SetIfNotNil(updates, "batch_name", r.BatchName)
	helper.SetIfNotNil(updates, "batch_class_level", r.BatchClassLevel)
	helper.SetIfNotNil(updates, "batch_original_price", r.BatchOriginalPrice)
	helper.SetIfNotNil(updates, "batch_discount_price", r.BatchDiscountPrice)
	helper.SetIfNotNil(updates, "batch_description", r.BatchDescription)
	helper.SetIfNotNil(updates, "batch_gradient", r.BatchGradient)
	helper.SetIfNotNil(updates, "batch_status", r.BatchStatus)
	helper.SetIfNotNil(updates, "batch_student_count", r.BatchStudentCount)
	if r.BatchTeachers != nil {
		updates["batch_teachers"] = pqStringArray(*r.BatchTeachers)
	}
	return helper.CleanUpdates(updates)
}

// ============================
// Response DTO
// ============================

type BatchResponse struct {
	BatchID            string   `json:"batch_id"`
	BatchName          string   `json:"batch_name"`
	BatchClassLevel    string   `json:"batch_class_level"`
	BatchOriginalPrice int      `json:"batch_original_price"`
	BatchDiscountPrice int      `json:"batch_discount_price"`
	BatchDescription   string   `json:"batch_description"`
	BatchTeachers      []string `json:"batch_teachers"`
	BatchGradient      string   `json:"batch_gradient"`
	BatchBannerImage   *string  `json:"batch_banner_image,omitempty"`
	BatchStatus        string   `json:"batch_status"`
	BatchStudentCount  int      `json:"batch_student_count"`
	BatchCreatedAt     string   `json:"batch_created_at"`
}

// ============================
// Converters
// ============================

func (r *CreateBatchRequest) ToModel() *model.BatchModel {
	id := r.BatchID
	if id == "" {
		id = helper.GenerateID("b")
	}
	status := r.BatchStatus
	if status == "" {
		status = "Active"
	}
	return &model.BatchModel{
		BatchID:            id,
		BatchName:          r.BatchName,
		BatchClassLevel:    r.BatchClassLevel,
		BatchOriginalPrice: r.BatchOriginalPrice,
		BatchDiscountPrice: r.BatchDiscountPrice,
		BatchDescription:   r.BatchDescription,
		BatchTeachers:      pqStringArray(r.BatchTeachers),
		BatchGradient:      r.BatchGradient,
		BatchStatus:        status,
		BatchStudentCount:  r.BatchStudentCount,
	}
}

func ToBatchResponse(m *model.BatchModel) *BatchResponse {
	return &BatchResponse{
		BatchID:            m.BatchID,
		BatchName:          m.BatchName,
		BatchClassLevel:    m.BatchClassLevel,
		BatchOriginalPrice: m.BatchOriginalPrice,
		BatchDiscountPrice: m.BatchDiscountPrice,
		BatchDescription:   m.BatchDescription,
		BatchTeachers:      m.BatchTeachers,
		BatchGradient:      m.BatchGradient,
		BatchBannerImage:   m.BatchBannerImage,
		BatchStatus:        m.BatchStatus,
		BatchStudentCount:  m.BatchStudentCount,
		BatchCreatedAt:     m.BatchCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
