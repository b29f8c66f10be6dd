package dto

import (
	"strings"
	"testing"

	"eduverse_backend/internals/constants"
	"eduverse_backend/internals/features/contents/model"
)

func strPtr(s string) *string { return &s }

func TestGroupByTypePartition(t *testing.T) {
	items := []model.ContentItemModel{
		{ContentID: "l1", ContentType: constants.ContentTypeLecture, ContentTitle: "Quadrilaterals L1 - Introduction"},
		{ContentID: "n1", ContentType: constants.ContentTypeNote, ContentTitle: "Chapter 8 - Quadrilaterals Notes"},
		{ContentID: "l2", ContentType: constants.ContentTypeLecture, ContentTitle: "Real Numbers L1"},
		{ContentID: "d1", ContentType: constants.ContentTypeDPP, ContentTitle: "DPP 01 - Quadrilaterals"},
	}

	grouped := GroupByType(items)

	if len(grouped.Lectures) != 2 || len(grouped.Notes) != 1 || len(grouped.Dpps) != 1 {
		t.Fatalf("group sizes = %d/%d/%d, want 2/1/1",
			len(grouped.Lectures), len(grouped.Notes), len(grouped.Dpps))
	}

	// Input order survives within a group.
	if grouped.Lectures[0].ContentID != "l1" || grouped.Lectures[1].ContentID != "l2" {
		t.Errorf("lecture order = %s, %s", grouped.Lectures[0].ContentID, grouped.Lectures[1].ContentID)
	}

	// Groups are disjoint and together cover the input.
	seen := map[string]int{}
	for _, r := range grouped.Lectures {
		seen[r.ContentID]++
	}
	for _, r := range grouped.Notes {
		seen[r.ContentID]++
	}
	for _, r := range grouped.Dpps {
		seen[r.ContentID]++
	}
	if len(seen) != len(items) {
		t.Errorf("grouped ids = %d, want %d", len(seen), len(items))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s appears %d times", id, n)
		}
	}
}

func TestGroupByTypeEmpty(t *testing.T) {
	grouped := GroupByType(nil)

	// Empty groups must render as [] in JSON, never null.
	if grouped.Lectures == nil || grouped.Notes == nil || grouped.Dpps == nil {
		t.Error("empty groups must be non-nil slices")
	}
}

func TestCreateContentRequestToModel(t *testing.T) {
	tests := []struct {
		contentType string
		wantPrefix  string
	}{
		{constants.ContentTypeLecture, "l-"},
		{constants.ContentTypeNote, "n-"},
		{constants.ContentTypeDPP, "d-"},
	}

	for _, tt := range tests {
		r := CreateContentRequest{ContentType: tt.contentType, ContentTitle: "Anything"}
		m := r.ToModel()
		if !strings.HasPrefix(m.ContentID, tt.wantPrefix) {
			t.Errorf("generated id %q, want prefix %q", m.ContentID, tt.wantPrefix)
		}
	}

	// A caller-supplied id wins over generation.
	r := CreateContentRequest{ContentID: "n9", ContentType: constants.ContentTypeNote, ContentTitle: "Extra Notes"}
	if got := r.ToModel().ContentID; got != "n9" {
		t.Errorf("id = %q, want n9", got)
	}
}

func TestToContentItemResponseEmbeddedFlag(t *testing.T) {
	link := model.ContentItemModel{ContentID: "l1", ContentType: constants.ContentTypeLecture,
		ContentURL: strPtr("https://www.youtube.com/watch?v=example")}
	file := model.ContentItemModel{ContentID: "n1", ContentType: constants.ContentTypeNote,
		ContentURL: strPtr("data:application/pdf;base64,JVBERi0xLjQ=")}
	bare := model.ContentItemModel{ContentID: "d1", ContentType: constants.ContentTypeDPP}

	if ToContentItemResponse(&link).ContentEmbedded {
		t.Error("external link flagged embedded")
	}
	if !ToContentItemResponse(&file).ContentEmbedded {
		t.Error("data URI not flagged embedded")
	}
	if ToContentItemResponse(&bare).ContentEmbedded {
		t.Error("missing url flagged embedded")
	}
}

func TestUpdateContentRequestToUpdates(t *testing.T) {
	r := UpdateContentRequest{
		ContentTitle: strPtr("Real Numbers L2"),
		ContentTag:   nil,
		ContentDate:  strPtr("2024-03-05"),
	}

	updates := r.ToUpdates()

	if len(updates) != 2 {
		t.Fatalf("updates = %v, want 2 entries", updates)
	}
	if updates["content_title"] != "Real Numbers L2" {
		t.Errorf("content_title = %v", updates["content_title"])
	}
	if _, ok := updates["content_tag"]; ok {
		t.Error("nil field leaked into updates")
	}
}
