package model

import "time"

type ContentItemModel struct {
	ContentID    string  `gorm:"column:content_id;primaryKey;type:varchar(64)" json:"content_id"`
	ContentType  string  `gorm:"column:content_type;type:varchar(16);not null;index" json:"content_type"` // Lecture|Note|DPP
	ContentTitle string  `gorm:"column:content_title;type:varchar(255);not null" json:"content_title"`
	ContentTag   *string `gorm:"column:content_tag;type:varchar(64)" json:"content_tag,omitempty"`
	ContentDate  *string `gorm:"column:content_date;type:varchar(10)" json:"content_date,omitempty"`
	// Lectures only
	ContentDuration  *string `gorm:"column:content_duration;type:varchar(32)" json:"content_duration,omitempty"`
	ContentSubjectID *string `gorm:"column:content_subject_id;type:varchar(64);index" json:"content_subject_id,omitempty"`
	// External link or embedded file as data URI; helper.ParseResource tells
	// the two apart.
	ContentURL *string `gorm:"column:content_url;type:text" json:"content_url,omitempty"`

	ContentCreatedAt time.Time  `gorm:"column:content_created_at;autoCreateTime" json:"content_created_at"`
	ContentUpdatedAt *time.Time `gorm:"column:content_updated_at;autoUpdateTime" json:"content_updated_at,omitempty"`
}

func (ContentItemModel) TableName() string {
	return "contents"
}
