package seeds

import (
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	batchModel "eduverse_backend/internals/features/batches/model"
	contentModel "eduverse_backend/internals/features/contents/model"
	settingsModel "eduverse_backend/internals/features/settings/model"
	studentModel "eduverse_backend/internals/features/students/model"
	subjectModel "eduverse_backend/internals/features/subjects/model"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func setupRunnerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&batchModel.BatchModel{},
		&subjectModel.SubjectModel{},
		&contentModel.ContentItemModel{},
		&studentModel.StudentModel{},
		&settingsModel.AppSettingsModel{},
	))
	return db
}

func countOf(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestRunAllSeedsPopulatesEmptyStore(t *testing.T) {
	db := setupRunnerDB(t)
	chdir(t, "../..") // seed paths are relative to the repo root

	RunAllSeeds(db)

	require.EqualValues(t, 2, countOf(t, db, &batchModel.BatchModel{}))
	require.EqualValues(t, 4, countOf(t, db, &subjectModel.SubjectModel{}))
	require.EqualValues(t, 4, countOf(t, db, &contentModel.ContentItemModel{}))
	require.EqualValues(t, 2, countOf(t, db, &studentModel.StudentModel{}))
	require.EqualValues(t, 1, countOf(t, db, &settingsModel.AppSettingsModel{}))
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := setupRunnerDB(t)
	chdir(t, "../..")

	RunAllSeeds(db)
	RunAllSeeds(db)

	require.EqualValues(t, 2, countOf(t, db, &batchModel.BatchModel{}))
	require.EqualValues(t, 4, countOf(t, db, &subjectModel.SubjectModel{}))
}

func TestRunAllSeedsSkipsWhenBatchesExist(t *testing.T) {
	db := setupRunnerDB(t)
	require.NoError(t, db.Create(&batchModel.BatchModel{
		BatchID:         "b11-custom",
		BatchName:       "Custom Batch",
		BatchClassLevel: "Class 11",
	}).Error)

	// One existing batch blocks the whole seed run, even though every other
	// table is still empty.
	RunAllSeeds(db)

	require.EqualValues(t, 1, countOf(t, db, &batchModel.BatchModel{}))
	require.Zero(t, countOf(t, db, &subjectModel.SubjectModel{}))
	require.Zero(t, countOf(t, db, &studentModel.StudentModel{}))
}
