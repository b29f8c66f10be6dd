package helper

// CleanUpdates drops every key whose value is nil from a partial-update map.
// Present-but-empty values ("", 0, false) stay untouched. The store rejects
// writes carrying nil fields, so this runs before every Updates call.
//
// Idempotent: cleaning an already-clean map returns an equal map.
func CleanUpdates(updates map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if v == nil {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// SetIfNotNil adds column → *value to the update map only when the pointer is
// non-nil. Pointer-field request DTOs use this to build partial updates.
func SetIfNotNil[T any](updates map[string]interface{}, column string, v *T) {
	if v != nil {
		updates[column] = *v
	}
}
