package model

import "time"

type SubjectModel struct {
	SubjectID        string `gorm:"column:subject_id;primaryKey;type:varchar(64)" json:"subject_id"`
	SubjectName      string `gorm:"column:subject_name;type:varchar(255);not null" json:"subject_name"`
	SubjectIconName  string `gorm:"column:subject_icon_name;type:varchar(64)" json:"subject_icon_name"` // resolved to a glyph at render time
	SubjectColor     string `gorm:"column:subject_color;type:varchar(64)" json:"subject_color"`
	SubjectTextColor string `gorm:"column:subject_text_color;type:varchar(64)" json:"subject_text_color"`

	// Derived: tracks the number of content items referencing this subject.
	// Maintained atomically inside the content transactions, never trusted as
	// independently authoritative.
	SubjectTopicCount int `gorm:"column:subject_topic_count;default:0" json:"subject_topic_count"`

	SubjectBatchID string `gorm:"column:subject_batch_id;type:varchar(64);index;not null" json:"subject_batch_id"`

	SubjectCreatedAt time.Time  `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt *time.Time `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at,omitempty"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
