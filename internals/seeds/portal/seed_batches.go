package portal

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/batches/model"
)

type BatchSeed struct {
	BatchID            string   `json:"batch_id"`
	BatchName          string   `json:"batch_name"`
	BatchClassLevel    string   `json:"batch_class_level"`
	BatchOriginalPrice int      `json:"batch_original_price"`
	BatchDiscountPrice int      `json:"batch_discount_price"`
	BatchDescription   string   `json:"batch_description"`
	BatchTeachers      []string `json:"batch_teachers"`
	BatchGradient      string   `json:"batch_gradient"`
	BatchStatus        string   `json:"batch_status"`
	BatchStudentCount  int      `json:"batch_student_count"`
}

func SeedBatchesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var batches []BatchSeed
	if err := json.Unmarshal(file, &batches); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, b := range batches {
		newBatch := model.BatchModel{
			BatchID:            b.BatchID,
			BatchName:          b.BatchName,
			BatchClassLevel:    b.BatchClassLevel,
			BatchOriginalPrice: b.BatchOriginalPrice,
			BatchDiscountPrice: b.BatchDiscountPrice,
			BatchDescription:   b.BatchDescription,
			BatchTeachers:      pq.StringArray(b.BatchTeachers),
			BatchGradient:      b.BatchGradient,
			BatchStatus:        b.BatchStatus,
			BatchStudentCount:  b.BatchStudentCount,
		}
		if err := db.Create(&newBatch).Error; err != nil {
			log.Printf("❌ Failed to insert batch %s: %v", b.BatchID, err)
		} else {
			log.Printf("✅ Inserted batch %s (%s)", newBatch.BatchName, newBatch.BatchID)
		}
	}
}
