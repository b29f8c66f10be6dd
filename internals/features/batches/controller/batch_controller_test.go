package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/batches/dto"
	"eduverse_backend/internals/features/batches/model"
	contentModel "eduverse_backend/internals/features/contents/model"
	subjectModel "eduverse_backend/internals/features/subjects/model"
)

func setupBatchApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.BatchModel{},
		&subjectModel.SubjectModel{},
		&contentModel.ContentItemModel{},
	))

	ctrl := NewBatchController(db)
	app := fiber.New()
	app.Get("/batches", ctrl.GetAllBatches)
	app.Get("/batches/:id", ctrl.GetBatchByID)
	app.Post("/a/batches", ctrl.CreateBatch)
	app.Put("/a/batches/:id", ctrl.UpdateBatch)
	app.Delete("/a/batches/:id", ctrl.DeleteBatch)
	return app, db
}

func batchJSONReq(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func seedVishwas(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.BatchModel{
		BatchID:            "b10-vishwas",
		BatchName:          "Vishwas Batch",
		BatchClassLevel:    "Class 10",
		BatchOriginalPrice: 5000,
		BatchDiscountPrice: 2999,
		BatchStatus:        "Active",
	}).Error)
}

func TestCreateAndFetchBatch(t *testing.T) {
	app, _ := setupBatchApp(t)

	resp, err := app.Test(batchJSONReq(t, "POST", "/a/batches", fiber.Map{
		"batch_name":           "Aarambh Batch 2.0",
		"batch_class_level":    "Class 9",
		"batch_original_price": 4500,
		"batch_discount_price": 0,
		"batch_teachers":       []string{"https://picsum.photos/id/64/100/100"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.BatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.BatchID)
	require.Equal(t, "Active", created.BatchStatus)
	// Discount 0 is a free batch, not a missing price.
	require.Zero(t, created.BatchDiscountPrice)

	resp, err = app.Test(httptest.NewRequest("GET", "/batches/"+created.BatchID, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched dto.BatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	require.Equal(t, created.BatchID, fetched.BatchID)
	require.Equal(t, []string{"https://picsum.photos/id/64/100/100"}, fetched.BatchTeachers)
}

func TestCreateBatchRejectsDiscountAboveOriginal(t *testing.T) {
	app, _ := setupBatchApp(t)

	resp, err := app.Test(batchJSONReq(t, "POST", "/a/batches", fiber.Map{
		"batch_name":           "Broken Pricing",
		"batch_class_level":    "Class 9",
		"batch_original_price": 1000,
		"batch_discount_price": 2000,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateBatchRejectsUnknownClassLevel(t *testing.T) {
	app, _ := setupBatchApp(t)

	resp, err := app.Test(batchJSONReq(t, "POST", "/a/batches", fiber.Map{
		"batch_name":        "Class 12 Batch",
		"batch_class_level": "Class 12",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateBatchPriceInvariant(t *testing.T) {
	app, db := setupBatchApp(t)
	seedVishwas(t, db)

	// Raising the discount above the stored original must be refused.
	resp, err := app.Test(batchJSONReq(t, "PUT", "/a/batches/b10-vishwas", fiber.Map{
		"batch_discount_price": 6000,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var unchanged model.BatchModel
	require.NoError(t, db.First(&unchanged, "batch_id = ?", "b10-vishwas").Error)
	require.Equal(t, 2999, unchanged.BatchDiscountPrice)

	// A valid cut goes through.
	resp, err = app.Test(batchJSONReq(t, "PUT", "/a/batches/b10-vishwas", fiber.Map{
		"batch_discount_price": 1999,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Lowering the original below the stored discount is checked against the
	// merged document too.
	resp, err = app.Test(batchJSONReq(t, "PUT", "/a/batches/b10-vishwas", fiber.Map{
		"batch_original_price": 1500,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateBatchPartialKeepsOtherFields(t *testing.T) {
	app, db := setupBatchApp(t)
	seedVishwas(t, db)

	resp, err := app.Test(batchJSONReq(t, "PUT", "/a/batches/b10-vishwas", fiber.Map{
		"batch_name": "Vishwas Batch 3.0",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var batch model.BatchModel
	require.NoError(t, db.First(&batch, "batch_id = ?", "b10-vishwas").Error)
	require.Equal(t, "Vishwas Batch 3.0", batch.BatchName)
	require.Equal(t, "Class 10", batch.BatchClassLevel)
	require.Equal(t, 5000, batch.BatchOriginalPrice)
}

func TestDeleteBatchCascades(t *testing.T) {
	app, db := setupBatchApp(t)
	seedVishwas(t, db)
	require.NoError(t, db.Create(&subjectModel.SubjectModel{
		SubjectID: "maths-10", SubjectName: "Mathematics", SubjectBatchID: "b10-vishwas",
	}).Error)
	require.NoError(t, db.Create(&subjectModel.SubjectModel{
		SubjectID: "science-10", SubjectName: "Science", SubjectBatchID: "b10-vishwas",
	}).Error)
	sid := "maths-10"
	require.NoError(t, db.Create(&contentModel.ContentItemModel{
		ContentID: "l2", ContentType: constants.ContentTypeLecture,
		ContentTitle: "Real Numbers L1", ContentSubjectID: &sid,
	}).Error)
	// Content with no subject link survives any cascade.
	require.NoError(t, db.Create(&contentModel.ContentItemModel{
		ContentID: "l0", ContentType: constants.ContentTypeLecture,
		ContentTitle: "Orientation Session",
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/a/batches/b10-vishwas", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var subjects int64
	require.NoError(t, db.Model(&subjectModel.SubjectModel{}).
		Where("subject_batch_id = ?", "b10-vishwas").Count(&subjects).Error)
	require.Zero(t, subjects)

	var contents []contentModel.ContentItemModel
	require.NoError(t, db.Find(&contents).Error)
	require.Len(t, contents, 1)
	require.Equal(t, "l0", contents[0].ContentID)
}

func TestDeleteBatchNotFound(t *testing.T) {
	app, _ := setupBatchApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/a/batches/ghost", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetBatchByIDNotFound(t *testing.T) {
	app, _ := setupBatchApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/batches/ghost", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
