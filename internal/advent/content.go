package advent

import "encoding/json"

// Content types a day can carry.
const (
	TypeText  = "text"
	TypePhoto = "photo"
	TypeMusic = "music"
)

// Content is a day's payload. One record backs all three content types;
// fields irrelevant to the active type are kept, not cleared, so switching
// photo -> text -> photo restores the previous url.
type Content struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ParseContent decodes a stored payload. Absent, empty or malformed input
// degrades to the zero Content; it never fails.
func ParseContent(raw []byte) Content {
	var c Content
	if len(raw) == 0 {
		return c
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Content{}
	}
	return c
}

// SerializeContent is the inverse of ParseContent.
func SerializeContent(c Content) []byte {
	raw, _ := json.Marshal(c)
	return raw
}

// UpdateField merges one field into a content record, keeping the rest.
// Unknown keys are ignored.
func UpdateField(c Content, key, value string) Content {
	switch key {
	case "text":
		c.Text = value
	case "url":
		c.URL = value
	}
	return c
}

// ValidType reports whether t is one of the three content types.
func ValidType(t string) bool {
	return t == TypeText || t == TypePhoto || t == TypeMusic
}
