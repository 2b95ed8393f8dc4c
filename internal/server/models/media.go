package models

import "github.com/mealsnap/mealsnap/internal/common"

// MediaKind is the declared content type of a meal upload. The set is
// closed: anything other than the two constants below is rejected before
// an upload URL is ever issued.
type MediaKind string

const (
	MediaKindAudio MediaKind = "audio/m4a"
	MediaKindImage MediaKind = "image/jpeg"
)

// ParseMediaKind validates a declared content type against the closed set.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case MediaKindAudio, MediaKindImage:
		return MediaKind(s), nil
	default:
		return "", common.ErrorValidation
	}
}

// Ext returns the canonical file extension for the kind.
func (k MediaKind) Ext() string {
	if k == MediaKindAudio {
		return ".m4a"
	}
	return ".jpeg"
}

// InputType returns the value stored on the meal row for this kind.
func (k MediaKind) InputType() string {
	if k == MediaKindAudio {
		return "audio"
	}
	return "picture"
}
