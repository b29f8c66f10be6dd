package seeds

import (
	"log"

	"gorm.io/gorm"

	batchModel "eduverse_backend/internals/features/batches/model"
	portal "eduverse_backend/internals/seeds/portal"
)

// RunAllSeeds loads the first-run data set. The batches table is the guard:
// once any batch exists nothing is seeded again, even if other tables are
// independently empty.
func RunAllSeeds(db *gorm.DB) {
	var count int64
	if err := db.Model(&batchModel.BatchModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Seed check failed: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Batches exist, skipping seeds.")
		return
	}

	log.Println("🌱 Empty store, seeding initial data...")

	portal.SeedBatchesFromJSON(db, "internals/seeds/portal/data_batches.json")
	portal.SeedSubjectsFromJSON(db, "internals/seeds/portal/data_subjects.json")
	portal.SeedContentsFromJSON(db, "internals/seeds/portal/data_contents.json")
	portal.SeedStudentsFromJSON(db, "internals/seeds/portal/data_students.json")
	portal.SeedDefaultSettings(db)
}
