package portal

import (
	"log"

	"gorm.io/gorm"

	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/settings/model"
)

// SeedDefaultSettings inserts the singleton settings row if it is missing.
// Defaults mirror what the public app assumes before an admin ever saves.
func SeedDefaultSettings(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.AppSettingsModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Settings seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	settings := model.AppSettingsModel{
		SettingsID:               constants.AppSettingsID,
		SettingsMaintenanceMode:  false,
		SettingsAllowEnrollments: true,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("❌ Failed to insert default settings: %v", err)
	} else {
		log.Println("✅ Inserted default app settings")
	}
}
