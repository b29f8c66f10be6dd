package model

import "time"

type StudentModel struct {
	StudentID       string `gorm:"column:student_id;primaryKey;type:varchar(64)" json:"student_id"`
	StudentName     string `gorm:"column:student_name;type:varchar(255);not null" json:"student_name"`
	StudentEmail    string `gorm:"column:student_email;type:varchar(255);not null" json:"student_email"`
	StudentBatchID  string `gorm:"column:student_batch_id;type:varchar(64);index" json:"student_batch_id"`
	StudentJoinDate string `gorm:"column:student_join_date;type:varchar(10)" json:"student_join_date"`
	StudentProgress int    `gorm:"column:student_progress;default:0" json:"student_progress"` // 0–100
	StudentStatus   string `gorm:"column:student_status;type:varchar(16);default:'Active'" json:"student_status"`

	// Self-service profile fields
	StudentMobile     *string `gorm:"column:student_mobile;type:varchar(20)" json:"student_mobile,omitempty"`
	StudentAge        *int    `gorm:"column:student_age" json:"student_age,omitempty"`
	StudentClassLevel *string `gorm:"column:student_class_level;type:varchar(16)" json:"student_class_level,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
