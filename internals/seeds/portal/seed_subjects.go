package portal

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"eduverse_backend/internals/features/subjects/model"
)

type SubjectSeed struct {
	SubjectID         string `json:"subject_id"`
	SubjectName       string `json:"subject_name"`
	SubjectIconName   string `json:"subject_icon_name"`
	SubjectColor      string `json:"subject_color"`
	SubjectTextColor  string `json:"subject_text_color"`
	SubjectTopicCount int    `json:"subject_topic_count"`
	SubjectBatchID    string `json:"subject_batch_id"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var subjects []SubjectSeed
	if err := json.Unmarshal(file, &subjects); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, s := range subjects {
		newSubject := model.SubjectModel{
			SubjectID:         s.SubjectID,
			SubjectName:       s.SubjectName,
			SubjectIconName:   s.SubjectIconName,
			SubjectColor:      s.SubjectColor,
			SubjectTextColor:  s.SubjectTextColor,
			SubjectTopicCount: s.SubjectTopicCount,
			SubjectBatchID:    s.SubjectBatchID,
		}
		if err := db.Create(&newSubject).Error; err != nil {
			log.Printf("❌ Failed to insert subject %s: %v", s.SubjectID, err)
		} else {
			log.Printf("✅ Inserted subject %s (%s)", newSubject.SubjectName, newSubject.SubjectID)
		}
	}
}
