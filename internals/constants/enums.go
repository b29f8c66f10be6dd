package constants

// Class levels a batch can target. "All" is a UI filter value only and is
// never stored on a batch.
const (
	ClassLevelAll = "All"
	ClassLevel9   = "Class 9"
	ClassLevel10  = "Class 10"
	ClassLevel11  = "Class 11"
)

var StorableClassLevels = []string{ClassLevel9, ClassLevel10, ClassLevel11}

// Content item types.
const (
	ContentTypeLecture = "Lecture"
	ContentTypeNote    = "Note"
	ContentTypeDPP     = "DPP"
)

// Batch status
const (
	BatchStatusActive   = "Active"
	BatchStatusInactive = "Inactive"
)

// Student status
const (
	StudentStatusActive    = "Active"
	StudentStatusSuspended = "Suspended"
)

// AppSettingsID is the well-known id of the settings singleton row.
const AppSettingsID = "app"
