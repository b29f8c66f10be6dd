package dto

import (
	"eduverse_backend/internals/features/subjects/model"
	helper "eduverse_backend/internals/helpers"
)

// ============================
// Request DTO
// ============================

type CreateSubjectRequest struct {
	SubjectID         string `json:"subject_id"` // optional; generated when empty
	SubjectName       string `json:"subject_name" validate:"required,min=2"`
	SubjectIconName   string `json:"subject_icon_name"`
	SubjectColor      string `json:"subject_color"`
	SubjectTextColor  string `json:"subject_text_color"`
	SubjectTopicCount int    `json:"subject_topic_count" validate:"gte=0"`
	SubjectBatchID    string `json:"subject_batch_id" validate:"required"`
}

type UpdateSubjectRequest struct {
	SubjectName       *string `json:"subject_name" validate:"omitempty,min=2"`
	SubjectIconName   *string `json:"subject_icon_name"`
	SubjectColor      *string `json:"subject_color"`
	SubjectTextColor  *string `json:"subject_text_color"`
	SubjectTopicCount *int    `json:"subject_topic_count" validate:"omitempty,gte=0"`
	SubjectBatchID    *string `json:"subject_batch_id"`
}

func (r *UpdateSubjectRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	helper.SetIfNotNil(updates, "subject_name", r.SubjectName)
	helper.SetIfNotNil(updates, "subject_icon_name", r.SubjectIconName)
	helper.SetIfNotNil(updates, "subject_color", r.SubjectColor)
	helper.SetIfNotNil(updates, "subject_text_color", r.SubjectTextColor)
	helper.SetIfNotNil(updates, "subject_topic_count", r.SubjectTopicCount)
	helper.SetIfNotNil(updates, "subject_batch_id", r.SubjectBatchID)
	return helper.CleanUpdates(updates)
}

// ============================
// Response DTO
// ============================

type SubjectResponse struct {
	SubjectID         string `json:"subject_id"`
	SubjectName       string `json:"subject_name"`
	SubjectIconName   string `json:"subject_icon_name"`
	SubjectColor      string `json:"subject_color"`
	SubjectTextColor  string `json:"subject_text_color"`
	SubjectTopicCount int    `json:"subject_topic_count"`
	SubjectBatchID    string `json:"subject_batch_id"`
}

// ============================
// Converters
// ============================

func (r *CreateSubjectRequest) ToModel() *model.SubjectModel {
	id := r.SubjectID
	if id == "" {
		id = helper.GenerateID("s")
	}
	return &model.SubjectModel{
		SubjectID:         id,
		SubjectName:       r.SubjectName,
		SubjectIconName:   r.SubjectIconName,
		SubjectColor:      r.SubjectColor,
		SubjectTextColor:  r.SubjectTextColor,
		SubjectTopicCount: r.SubjectTopicCount,
		SubjectBatchID:    r.SubjectBatchID,
	}
}

func ToSubjectResponse(m *model.SubjectModel) *SubjectResponse {
	return &SubjectResponse{
		SubjectID:         m.SubjectID,
		SubjectName:       m.SubjectName,
		SubjectIconName:   m.SubjectIconName,
		SubjectColor:      m.SubjectColor,
		SubjectTextColor:  m.SubjectTextColor,
		SubjectTopicCount: m.SubjectTopicCount,
		SubjectBatchID:    m.SubjectBatchID,
	}
}
