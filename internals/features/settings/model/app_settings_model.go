package model

import (
	"time"

	"gorm.io/datatypes"
)

// AppSettingsModel is a singleton: exactly one row with the well-known id
// "app". Admin save replaces the whole document.
type AppSettingsModel struct {
	SettingsID               string         `gorm:"column:settings_id;primaryKey;type:varchar(16)" json:"settings_id"`
	SettingsMaintenanceMode  bool           `gorm:"column:settings_maintenance_mode;default:false" json:"settings_maintenance_mode"`
	SettingsAllowEnrollments bool           `gorm:"column:settings_allow_enrollments;default:true" json:"settings_allow_enrollments"`
	SettingsSocialLinks      datatypes.JSON `gorm:"column:settings_social_links;type:jsonb" json:"settings_social_links,omitempty"` // {youtube, telegram, instagram}
	SettingsSupportEmail     *string        `gorm:"column:settings_support_email;type:varchar(255)" json:"settings_support_email,omitempty"`

	SettingsUpdatedAt *time.Time `gorm:"column:settings_updated_at;autoUpdateTime" json:"settings_updated_at,omitempty"`
}

func (AppSettingsModel) TableName() string {
	return "app_settings"
}
