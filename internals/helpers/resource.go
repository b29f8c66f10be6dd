package helper

import "strings"

// A content URL is either an external link or a file embedded as a data URI.
// The stored value is a single string; this is the one place that tells the
// two apart.

type ResourceKind int

const (
	ResourceKindNone ResourceKind = iota
	ResourceKindLink
	ResourceKindEmbedded
)

const dataURIPrefix = "data:"

type Resource struct {
	Kind     ResourceKind
	URL      string // external link
	MimeType string // embedded file
	Data     string // embedded file, base64 payload
}

// ParseResource classifies a stored url string.
func ParseResource(raw string) Resource {
	if raw == "" {
		return Resource{Kind: ResourceKindNone}
	}
	if !strings.HasPrefix(raw, dataURIPrefix) {
		return Resource{Kind: ResourceKindLink, URL: raw}
	}

	// data:<mime>;base64,<payload>
	rest := strings.TrimPrefix(raw, dataURIPrefix)
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return Resource{Kind: ResourceKindEmbedded}
	}
	mime := strings.TrimSuffix(meta, ";base64")
	return Resource{Kind: ResourceKindEmbedded, MimeType: mime, Data: payload}
}

// EmbeddedDataURI renders an embedded file back to its stored form.
func EmbeddedDataURI(mimeType, base64Data string) string {
	return dataURIPrefix + mimeType + ";base64," + base64Data
}

// IsEmbedded is a shortcut for the render-time check.
func IsEmbedded(raw string) bool {
	return strings.HasPrefix(raw, dataURIPrefix)
}
