package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/settings/model"
)

// Social link bundle stored as jsonb on the singleton row.
type SocialLinks struct {
	YoutubeURL   string `json:"youtube_url,omitempty"`
	TelegramURL  string `json:"telegram_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
}

// SaveSettingsRequest replaces the whole settings document. Fields left out
// of the payload are cleared, not preserved — full overwrite is the pinned
// behavior.
type SaveSettingsRequest struct {
	SettingsMaintenanceMode  bool    `json:"settings_maintenance_mode"`
	SettingsAllowEnrollments bool    `json:"settings_allow_enrollments"`
	SettingsYoutubeURL       string  `json:"settings_youtube_url" validate:"omitempty,url"`
	SettingsTelegramURL      string  `json:"settings_telegram_url" validate:"omitempty,url"`
	SettingsInstagramURL     string  `json:"settings_instagram_url" validate:"omitempty,url"`
	SettingsSupportEmail     *string `json:"settings_support_email" validate:"omitempty,email"`
}

type SettingsResponse struct {
	SettingsMaintenanceMode  bool    `json:"settings_maintenance_mode"`
	SettingsAllowEnrollments bool    `json:"settings_allow_enrollments"`
	SettingsYoutubeURL       string  `json:"settings_youtube_url,omitempty"`
	SettingsTelegramURL      string  `json:"settings_telegram_url,omitempty"`
	SettingsInstagramURL     string  `json:"settings_instagram_url,omitempty"`
	SettingsSupportEmail     *string `json:"settings_support_email,omitempty"`
}

// DefaultSettingsResponse is returned when the singleton row does not exist
// yet: maintenance off, enrollments open.
func DefaultSettingsResponse() *SettingsResponse {
	return &SettingsResponse{
		SettingsMaintenanceMode:  false,
		SettingsAllowEnrollments: true,
	}
}

func (r *SaveSettingsRequest) ToModel() *model.AppSettingsModel {
	links := SocialLinks{
		YoutubeURL:   r.SettingsYoutubeURL,
		TelegramURL:  r.SettingsTelegramURL,
		InstagramURL: r.SettingsInstagramURL,
	}
	linksJSON, _ := json.Marshal(links)

	return &model.AppSettingsModel{
		SettingsID:               constants.AppSettingsID,
		SettingsMaintenanceMode:  r.SettingsMaintenanceMode,
		SettingsAllowEnrollments: r.SettingsAllowEnrollments,
		SettingsSocialLinks:      datatypes.JSON(linksJSON),
		SettingsSupportEmail:     r.SettingsSupportEmail,
	}
}

func ToSettingsResponse(m *model.AppSettingsModel) *SettingsResponse {
	var links SocialLinks
	if m.SettingsSocialLinks != nil {
		_ = json.Unmarshal(m.SettingsSocialLinks, &links)
	}
	return &SettingsResponse{
		SettingsMaintenanceMode:  m.SettingsMaintenanceMode,
		SettingsAllowEnrollments: m.SettingsAllowEnrollments,
		SettingsYoutubeURL:       links.YoutubeURL,
		SettingsTelegramURL:      links.TelegramURL,
		SettingsInstagramURL:     links.InstagramURL,
		SettingsSupportEmail:     m.SettingsSupportEmail,
	}
}
