package helper

import "testing"

func TestParseResource(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Resource
	}{
		{
			name: "empty",
			raw:  "",
			want: Resource{Kind: ResourceKindNone},
		},
		{
			name: "external link",
			raw:  "https://www.youtube.com/watch?v=example",
			want: Resource{Kind: ResourceKindLink, URL: "https://www.youtube.com/watch?v=example"},
		},
		{
			name: "placeholder link",
			raw:  "#",
			want: Resource{Kind: ResourceKindLink, URL: "#"},
		},
		{
			name: "embedded pdf",
			raw:  "data:application/pdf;base64,JVBERi0xLjQ=",
			want: Resource{Kind: ResourceKindEmbedded, MimeType: "application/pdf", Data: "JVBERi0xLjQ="},
		},
		{
			name: "embedded webp",
			raw:  "data:image/webp;base64,UklGRg==",
			want: Resource{Kind: ResourceKindEmbedded, MimeType: "image/webp", Data: "UklGRg=="},
		},
		{
			name: "malformed data uri",
			raw:  "data:application/pdf",
			want: Resource{Kind: ResourceKindEmbedded},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseResource(tt.raw); got != tt.want {
				t.Errorf("ParseResource(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEmbeddedDataURIRoundTrip(t *testing.T) {
	raw := EmbeddedDataURI("application/pdf", "JVBERi0xLjQ=")

	got := ParseResource(raw)
	if got.Kind != ResourceKindEmbedded {
		t.Fatalf("kind = %v, want embedded", got.Kind)
	}
	if got.MimeType != "application/pdf" || got.Data != "JVBERi0xLjQ=" {
		t.Errorf("round trip lost parts: %+v", got)
	}
}

func TestIsEmbedded(t *testing.T) {
	if !IsEmbedded("data:image/webp;base64,UklGRg==") {
		t.Error("data URI should be embedded")
	}
	if IsEmbedded("https://example.com/note.pdf") {
		t.Error("plain link should not be embedded")
	}
}
