package portal

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"eduverse_backend/internals/features/students/model"
)

type StudentSeed struct {
	StudentID       string `json:"student_id"`
	StudentName     string `json:"student_name"`
	StudentEmail    string `json:"student_email"`
	StudentBatchID  string `json:"student_batch_id"`
	StudentJoinDate string `json:"student_join_date"`
	StudentProgress int    `json:"student_progress"`
	StudentStatus   string `json:"student_status"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var students []StudentSeed
	if err := json.Unmarshal(file, &students); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, s := range students {
		newStudent := model.StudentModel{
			StudentID:       s.StudentID,
			StudentName:     s.StudentName,
			StudentEmail:    s.StudentEmail,
			StudentBatchID:  s.StudentBatchID,
			StudentJoinDate: s.StudentJoinDate,
			StudentProgress: s.StudentProgress,
			StudentStatus:   s.StudentStatus,
		}
		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Failed to insert student %s: %v", s.StudentID, err)
		} else {
			log.Printf("✅ Inserted student %s (%s)", newStudent.StudentName, newStudent.StudentID)
		}
	}
}
