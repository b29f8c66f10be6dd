package helper

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	before := time.Now().UnixMilli()
	id := GenerateID("b")
	after := time.Now().UnixMilli()

	prefix, ts, found := strings.Cut(id, "-")
	if !found {
		t.Fatalf("id %q has no separator", id)
	}
	if prefix != "b" {
		t.Errorf("prefix = %q, want %q", prefix, "b")
	}

	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		t.Fatalf("timestamp part %q not numeric: %v", ts, err)
	}
	if millis < before || millis > after {
		t.Errorf("timestamp %d outside [%d, %d]", millis, before, after)
	}
}

func TestHasIDPrefix(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
		want   bool
	}{
		{"b-1714392000000", "b", true},
		{"n-1714392000000", "b", false},
		{"b9-aarambh", "b", false}, // seed slug, not a generated id
		{"s-1", "s", true},
	}

	for _, tt := range tests {
		if got := HasIDPrefix(tt.id, tt.prefix); got != tt.want {
			t.Errorf("HasIDPrefix(%q, %q) = %v, want %v", tt.id, tt.prefix, got, tt.want)
		}
	}
}
