package portal

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"eduverse_backend/internals/features/contents/model"
)

type ContentSeed struct {
	ContentID        string  `json:"content_id"`
	ContentTitle     string  `json:"content_title"`
	ContentType      string  `json:"content_type"`
	ContentTag       *string `json:"content_tag"`
	ContentDate      *string `json:"content_date"`
	ContentDuration  *string `json:"content_duration"`
	ContentSubjectID *string `json:"content_subject_id"`
	ContentURL       *string `json:"content_url"`
}

// SeedContentsFromJSON inserts content rows as-is. Topic counts are seeded on
// the subject rows directly, so no counter bump happens here.
func SeedContentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var contents []ContentSeed
	if err := json.Unmarshal(file, &contents); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, c := range contents {
		newContent := model.ContentItemModel{
			ContentID:        c.ContentID,
			ContentTitle:     c.ContentTitle,
			ContentType:      c.ContentType,
			ContentTag:       c.ContentTag,
			ContentDate:      c.ContentDate,
			ContentDuration:  c.ContentDuration,
			ContentSubjectID: c.ContentSubjectID,
			ContentURL:       c.ContentURL,
		}
		if err := db.Create(&newContent).Error; err != nil {
			log.Printf("❌ Failed to insert content %s: %v", c.ContentID, err)
		} else {
			log.Printf("✅ Inserted content %s (%s)", newContent.ContentTitle, newContent.ContentID)
		}
	}
}
