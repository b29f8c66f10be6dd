package dto

import (
	"eduverse_backend/internals/features/students/model"
	helper "eduverse_backend/internals/helpers"
)

// ============================
// Request DTO
// ============================

type CreateStudentRequest struct {
	StudentID       string `json:"student_id"` // optional; generated when empty
	StudentName     string `json:"student_name" validate:"required,min=2"`
	StudentEmail    string `json:"student_email" validate:"required,email"`
	StudentBatchID  string `json:"student_batch_id" validate:"required"`
	StudentJoinDate string `json:"student_join_date" validate:"omitempty,datetime=2006-01-02"`
	StudentProgress int    `json:"student_progress" validate:"gte=0,lte=100"`
	StudentStatus   string `json:"student_status" validate:"omitempty,oneof=Active Suspended"`
}

type UpdateStudentStatusRequest struct {
	StudentStatus string `json:"student_status" validate:"required,oneof=Active Suspended"`
}

// UpdateProfileRequest is the self-service profile form.
type UpdateProfileRequest struct {
	StudentName       *string `json:"student_name" validate:"omitempty,min=2"`
	StudentEmail      *string `json:"student_email" validate:"omitempty,email"`
	StudentMobile     *string `json:"student_mobile" validate:"omitempty,min=7,max=20"`
	StudentAge        *int    `json:"student_age" validate:"omitempty,gte=5,lte=100"`
	StudentClassLevel *string `json:"student_class_level" validate:"omitempty,oneof='Class 9' 'Class 10' 'Class 11'"`
}

func (r *UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	helper.SetIfNotNil(updates, "student_name", r.StudentName)
	helper.SetIfNotNil(updates, "student_email", r.StudentEmail)
	helper.SetIfNotNil(updates, "student_mobile", r.StudentMobile)
	helper.SetIfNotNil(updates, "student_age", r.StudentAge)
	helper.SetIfNotNil(updates, "student_class_level", r.StudentClassLevel)
	return helper.CleanUpdates(updates)
}

// ============================
// Response DTO
// ============================

type StudentResponse struct {
	StudentID         string  `json:"student_id"`
	StudentName       string  `json:"student_name"`
	StudentEmail      string  `json:"student_email"`
	StudentBatchID    string  `json:"student_batch_id"`
	StudentJoinDate   string  `json:"student_join_date"`
	StudentProgress   int     `json:"student_progress"`
	StudentStatus     string  `json:"student_status"`
	StudentMobile     *string `json:"student_mobile,omitempty"`
	StudentAge        *int    `json:"student_age,omitempty"`
	StudentClassLevel *string `json:"student_class_level,omitempty"`
}

// ============================
// Converters
// ============================

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	id := r.StudentID
	if id == "" {
		id = helper.GenerateID("st")
	}
	status := r.StudentStatus
	if status == "" {
		status = "Active"
	}
	return &model.StudentModel{
		StudentID:       id,
		StudentName:     r.StudentName,
		StudentEmail:    r.StudentEmail,
		StudentBatchID:  r.StudentBatchID,
		StudentJoinDate: r.StudentJoinDate,
		StudentProgress: r.StudentProgress,
		StudentStatus:   status,
	}
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:         m.StudentID,
		StudentName:       m.StudentName,
		StudentEmail:      m.StudentEmail,
		StudentBatchID:    m.StudentBatchID,
		StudentJoinDate:   m.StudentJoinDate,
		StudentProgress:   m.StudentProgress,
		StudentStatus:     m.StudentStatus,
		StudentMobile:     m.StudentMobile,
		StudentAge:        m.StudentAge,
		StudentClassLevel: m.StudentClassLevel,
	}
}
