package model

import (
	"time"

	"github.com/lib/pq"
)

type BatchModel struct {
	BatchID            string         `gorm:"column:batch_id;primaryKey;type:varchar(64)" json:"batch_id"`
	BatchName          string         `gorm:"column:batch_name;type:varchar(255);not null" json:"batch_name"`
	BatchClassLevel    string         `gorm:"column:batch_class_level;type:varchar(16);not null" json:"batch_class_level"`
	BatchOriginalPrice int            `gorm:"column:batch_original_price;not null" json:"batch_original_price"`
	BatchDiscountPrice int            `gorm:"column:batch_discount_price;not null" json:"batch_discount_price"` // 0 = free
	BatchDescription   string         `gorm:"column:batch_description;type:text" json:"batch_description"`
	BatchTeachers      pq.StringArray `gorm:"column:batch_teachers;type:text[]" json:"batch_teachers"` // teacher image URLs, ordered
	BatchGradient      string         `gorm:"column:batch_gradient;type:varchar(64)" json:"batch_gradient"`
	BatchBannerImage   *string        `gorm:"column:batch_banner_image;type:text" json:"batch_banner_image,omitempty"` // webp data URI
	BatchStatus        string         `gorm:"column:batch_status;type:varchar(16);default:'Active'" json:"batch_status"`
	BatchStudentCount  int            `gorm:"column:batch_student_count;default:0" json:"batch_student_count"`

	BatchCreatedAt time.Time  `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt *time.Time `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at,omitempty"`
}

func (BatchModel) TableName() string {
	return "batches"
}
