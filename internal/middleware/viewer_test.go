package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewer_IssueAndVerify(t *testing.T) {
	v := NewViewer("test-secret")

	token, err := v.Issue(42)
	require.NoError(t, err)

	assert.True(t, v.Verify(token, 42))
	assert.False(t, v.Verify(token, 43), "token is scoped to one calendar")
	assert.False(t, v.Verify("garbage", 42))
	assert.False(t, v.Verify("", 42))
}

func TestViewer_WrongSecret(t *testing.T) {
	token, err := NewViewer("secret-a").Issue(1)
	require.NoError(t, err)
	assert.False(t, NewViewer("secret-b").Verify(token, 1))
}
