package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mural/internal/domain"
)

// Error is a non-2xx response from the API.
type Error struct {
	Method string
	Path   string
	Status int
	Detail string // server-supplied "detail", may be empty
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s %s: %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// ServerDetail implements the detail lookup used by domain.ServerDetail.
func (e *Error) ServerDetail() string { return e.Detail }

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil httpClient means http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &HTTP{Base: base, HTTP: httpClient}
}

func (c *HTTP) FetchFeed(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	if err := c.do(ctx, http.MethodGet, "posts/feed/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) CreatePost(ctx context.Context, content string) (domain.Post, error) {
	var out domain.Post
	if err := c.do(ctx, http.MethodPost, "posts/", domain.CreatePostRequest{Content: content}, &out); err != nil {
		return domain.Post{}, err
	}
	return out, nil
}

func (c *HTTP) ToggleLike(ctx context.Context, id domain.PostID) (domain.LikeResult, error) {
	var out domain.LikeResult
	if err := c.do(ctx, http.MethodPost, "posts/"+id.String()+"/like/", nil, &out); err != nil {
		return domain.LikeResult{}, err
	}
	return out, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// readDetail best-effort extracts {"detail": "..."} from an error body.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	b, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(b) == 0 {
		return ""
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return ""
	}
	return body.Detail
}

var _ domain.FeedClient = (*HTTP)(nil)
