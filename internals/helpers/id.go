package helper

import (
	"fmt"
	"strings"
	"time"
)

// GenerateID builds an entity id the same way the frontend used to: a short
// type prefix plus the creation timestamp in unix millis ("b-1714392000000").
// Seed data keeps its hand-assigned slugs instead.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

// HasIDPrefix reports whether id carries the given type prefix.
func HasIDPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-")
}
