package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduverse_backend/internals/features/batches/controller"
)

// 🌐 Public (student app)
func BatchPublicRoutes(api fiber.Router, db *gorm.DB) {
	batchCtrl := controller.NewBatchController(db)

	batch := api.Group("/batches")
	batch.Get("/", batchCtrl.GetAllBatches)    // 📄 list batches
	batch.Get("/:id", batchCtrl.GetBatchByID)  // 🔍 batch detail
}

// 🔐 Admin console
func BatchAdminRoutes(api fiber.Router, db *gorm.DB) {
	batchCtrl := controller.NewBatchController(db)

	batch := api.Group("/batches")
	batch.Get("/", batchCtrl.GetAllBatches)            // 📄 list batches
	batch.Get("/:id", batchCtrl.GetBatchByID)          // 🔍 batch detail
	batch.Post("/", batchCtrl.CreateBatch)             // ➕ create batch
	batch.Put("/:id", batchCtrl.UpdateBatch)           // 🔄 update batch
	batch.Put("/:id/banner", batchCtrl.UploadBanner)   // 🖼️ upload banner
	batch.Delete("/:id", batchCtrl.DeleteBatch)        // 🗑️ delete batch (cascade)
}
