package advent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Content
	}{
		{"text only", Content{Text: "hello"}},
		{"photo with caption", Content{URL: "/a.png", Text: "cap"}},
		{"empty", Content{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.c, ParseContent(SerializeContent(tt.c)))
		})
	}
}

func TestParseContent_Degrades(t *testing.T) {
	assert.Equal(t, Content{}, ParseContent(nil))
	assert.Equal(t, Content{}, ParseContent([]byte("")))
	assert.Equal(t, Content{}, ParseContent([]byte("not json {")))
	assert.Equal(t, Content{}, ParseContent([]byte("{}")))
}

func TestParseContent_IgnoresUnknownKeys(t *testing.T) {
	c := ParseContent([]byte(`{"text":"hi","legacy":true}`))
	assert.Equal(t, Content{Text: "hi"}, c)
}

func TestUpdateField_Merges(t *testing.T) {
	assert.Equal(t, Content{URL: "/x.png"}, UpdateField(Content{}, "url", "/x.png"))
	assert.Equal(t, Content{Text: "a", URL: "/x.png"}, UpdateField(Content{Text: "a"}, "url", "/x.png"))
	assert.Equal(t, Content{Text: "b", URL: "/x.png"}, UpdateField(Content{Text: "a", URL: "/x.png"}, "text", "b"))
	// Unknown key changes nothing.
	assert.Equal(t, Content{Text: "a"}, UpdateField(Content{Text: "a"}, "volume", "11"))
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeText))
	assert.True(t, ValidType(TypePhoto))
	assert.True(t, ValidType(TypeMusic))
	assert.False(t, ValidType("video"))
	assert.False(t, ValidType(""))
}
