package domain

import (
	"encoding/json"
	"maps"
	"strconv"
)

// PostID is the server-assigned identifier of a post.
type PostID int64

// String returns the decimal form used in API paths.
func (id PostID) String() string { return strconv.FormatInt(int64(id), 10) }

// Post is one feed item as returned by the API.
//
// Fields the client does not interpret are kept verbatim in Extra and written
// back unchanged when the post is re-encoded.
type Post struct {
	ID          PostID
	Content     string
	LikedByUser bool
	LikesCount  int

	Extra map[string]json.RawMessage
}

var postKnownKeys = []string{"id", "content", "liked_by_user", "likes_count"}

// MarshalJSON merges the known fields over the pass-through ones.
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+len(postKnownKeys))
	for k, v := range p.Extra {
		out[k] = v
	}
	out["id"] = p.ID
	out["content"] = p.Content
	out["liked_by_user"] = p.LikedByUser
	out["likes_count"] = p.LikesCount
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON. A null or missing likes_count reads as 0.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var known struct {
		ID          PostID `json:"id"`
		Content     string `json:"content"`
		LikedByUser bool   `json:"liked_by_user"`
		LikesCount  *int   `json:"likes_count"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	for _, k := range postKnownKeys {
		delete(raw, k)
	}

	*p = Post{
		ID:          known.ID,
		Content:     known.Content,
		LikedByUser: known.LikedByUser,
	}
	if known.LikesCount != nil {
		p.LikesCount = *known.LikesCount
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

// Clone returns a copy that shares nothing mutable with p.
func (p Post) Clone() Post {
	if p.Extra != nil {
		p.Extra = maps.Clone(p.Extra)
	}
	return p
}

// ClonePosts deep-copies a post list. A nil list stays nil.
func ClonePosts(in []Post) []Post {
	if in == nil {
		return nil
	}
	out := make([]Post, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CreatePostRequest is the body of POST posts/.
type CreatePostRequest struct {
	Content string `json:"content"`
}
