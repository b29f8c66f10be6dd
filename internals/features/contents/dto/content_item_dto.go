package dto

import (
	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/contents/model"
	helper "eduverse_backend/internals/helpers"
)

// ============================
// Request DTO
// ============================

type CreateContentRequest struct {
	ContentID        string  `json:"content_id"` // optional; generated when empty
	ContentType      string  `json:"content_type" validate:"required,oneof=Lecture Note DPP"`
	ContentTitle     string  `json:"content_title" validate:"required,min=2"`
	ContentTag       *string `json:"content_tag"`
	ContentDate      *string `json:"content_date" validate:"omitempty,datetime=2006-01-02"`
	ContentDuration  *string `json:"content_duration"`
	ContentSubjectID *string `json:"content_subject_id"`
	ContentURL       *string `json:"content_url"`
}

type UpdateContentRequest struct {
	ContentTitle    *string `json:"content_title" validate:"omitempty,min=2"`
	ContentTag      *string `json:"content_tag"`
	ContentDate     *string `json:"content_date" validate:"omitempty,datetime=2006-01-02"`
	ContentDuration *string `json:"content_duration"`
	ContentURL      *string `json:"content_url"`
}

func (r *UpdateContentRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	helper.SetIfNotNil(updates, "content_title", r.ContentTitle)
	helper.SetIfNotNil(updates, "content_tag", r.ContentTag)
	helper.SetIfNotNil(updates, "content_date", r.ContentDate)
	helper.SetIfNotNil(updates, "content_duration", r.ContentDuration)
	helper.SetIfNotNil(updates, "content_url", r.ContentURL)
	return helper.CleanUpdates(updates)
}

// ============================
// Response DTO
// ============================

type ContentItemResponse struct {
	ContentID        string  `json:"content_id"`
	ContentType      string  `json:"content_type"`
	ContentTitle     string  `json:"content_title"`
	ContentTag       *string `json:"content_tag,omitempty"`
	ContentDate      *string `json:"content_date,omitempty"`
	ContentDuration  *string `json:"content_duration,omitempty"`
	ContentSubjectID *string `json:"content_subject_id,omitempty"`
	ContentURL       *string `json:"content_url,omitempty"`
	ContentEmbedded  bool    `json:"content_embedded"` // true when the url is an embedded file
}

// GroupedContentResponse is the reshaped view the subject dashboard renders:
// one flat collection partitioned by type, store order preserved per group.
type GroupedContentResponse struct {
	Lectures []*ContentItemResponse `json:"lectures"`
	Notes    []*ContentItemResponse `json:"notes"`
	Dpps     []*ContentItemResponse `json:"dpps"`
}

// ============================
// Converters
// ============================

func (r *CreateContentRequest) ToModel() *model.ContentItemModel {
	id := r.ContentID
	if id == "" {
		id = helper.GenerateID(prefixForType(r.ContentType))
	}
	return &model.ContentItemModel{
		ContentID:        id,
		ContentType:      r.ContentType,
		ContentTitle:     r.ContentTitle,
		ContentTag:       r.ContentTag,
		ContentDate:      r.ContentDate,
		ContentDuration:  r.ContentDuration,
		ContentSubjectID: r.ContentSubjectID,
		ContentURL:       r.ContentURL,
	}
}

func ToContentItemResponse(m *model.ContentItemModel) *ContentItemResponse {
	embedded := false
	if m.ContentURL != nil {
		embedded = helper.IsEmbedded(*m.ContentURL)
	}
	return &ContentItemResponse{
		ContentID:        m.ContentID,
		ContentType:      m.ContentType,
		ContentTitle:     m.ContentTitle,
		ContentTag:       m.ContentTag,
		ContentDate:      m.ContentDate,
		ContentDuration:  m.ContentDuration,
		ContentSubjectID: m.ContentSubjectID,
		ContentURL:       m.ContentURL,
		ContentEmbedded:  embedded,
	}
}

// GroupByType partitions a flat content list into the three type groups.
// Groups are disjoint and together cover the whole input; input order is kept
// within each group.
func GroupByType(items []model.ContentItemModel) *GroupedContentResponse {
	grouped := &GroupedContentResponse{
		Lectures: []*ContentItemResponse{},
		Notes:    []*ContentItemResponse{},
		Dpps:     []*ContentItemResponse{},
	}
	for i := range items {
		resp := ToContentItemResponse(&items[i])
		switch items[i].ContentType {
		case constants.ContentTypeLecture:
			grouped.Lectures = append(grouped.Lectures, resp)
		case constants.ContentTypeNote:
			grouped.Notes = append(grouped.Notes, resp)
		case constants.ContentTypeDPP:
			grouped.Dpps = append(grouped.Dpps, resp)
		}
	}
	return grouped
}

func prefixForType(contentType string) string {
	switch contentType {
	case constants.ContentTypeLecture:
		return "l"
	case constants.ContentTypeNote:
		return "n"
	case constants.ContentTypeDPP:
		return "d"
	default:
		return "c"
	}
}
