package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mural/internal/domain"
)

func TestPost_UnknownFieldsPassThrough(t *testing.T) {
	in := `{"id":7,"content":"oi","liked_by_user":true,"likes_count":2,"author":{"username":"ana"},"created_at":"2024-05-01T10:00:00Z"}`

	var p domain.Post
	require.NoError(t, json.Unmarshal([]byte(in), &p))

	assert.Equal(t, domain.PostID(7), p.ID)
	assert.Equal(t, "oi", p.Content)
	assert.True(t, p.LikedByUser)
	assert.Equal(t, 2, p.LikesCount)
	assert.Len(t, p.Extra, 2)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestPost_NullLikesCountReadsAsZero(t *testing.T) {
	var p domain.Post
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"content":"x","likes_count":null}`), &p))
	assert.Equal(t, 0, p.LikesCount)
	assert.Nil(t, p.Extra)
}

func TestPost_CloneDoesNotShareExtra(t *testing.T) {
	p := domain.Post{ID: 1, Extra: map[string]json.RawMessage{"a": json.RawMessage(`1`)}}
	c := p.Clone()
	c.Extra["b"] = json.RawMessage(`2`)
	assert.NotContains(t, p.Extra, "b")
}

func TestPostID_String(t *testing.T) {
	assert.Equal(t, "42", domain.PostID(42).String())
}
