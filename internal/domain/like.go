package domain

// Status messages the API sends back from the like toggle endpoint.
const (
	LikedMessage   = "Curtiu!"
	UnlikedMessage = "Curtiu cancelada!"
)

// LikeResult is the response of POST posts/{id}/like/. Every field is
// optional; a nil pointer means the server did not send it.
type LikeResult struct {
	Liked      *bool   `json:"liked,omitempty"`
	LikesCount *int    `json:"likes_count,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// Apply reconciles p with the server response.
//
// Explicit fields are applied first, then the status message. Both shapes can
// be present in one response, in which case both are applied.
func (r LikeResult) Apply(p *Post) {
	if r.Liked != nil {
		p.LikedByUser = *r.Liked
	}
	if r.LikesCount != nil {
		p.LikesCount = *r.LikesCount
	}
	if r.Message == nil {
		return
	}
	switch *r.Message {
	case LikedMessage:
		p.LikedByUser = true
		p.LikesCount++
	case UnlikedMessage:
		p.LikedByUser = false
		p.LikesCount = max(0, p.LikesCount-1)
	}
}
