package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mural/internal/api"
	"mural/internal/devserver"
	"mural/internal/domain"
)

func newDevServer(t *testing.T, like devserver.LikeResponse, seed ...string) *httptest.Server {
	t.Helper()
	srv := devserver.New(like, nil)
	srv.Seed(seed...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_FeedCreateLike(t *testing.T) {
	ts := newDevServer(t, devserver.LikeResponseMessage, "primeiro", "segundo")
	c := api.NewHTTP(ts.URL, ts.Client()) // no trailing slash on purpose
	ctx := context.Background()

	feed, err := c.FetchFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "segundo", feed[0].Content)
	assert.Contains(t, feed[0].Extra, "created_at")

	p, err := c.CreatePost(ctx, "terceiro")
	require.NoError(t, err)
	assert.Equal(t, domain.PostID(3), p.ID)
	assert.Equal(t, "terceiro", p.Content)

	res, err := c.ToggleLike(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Message)
	assert.Equal(t, domain.LikedMessage, *res.Message)
	assert.Nil(t, res.Liked)
	assert.Nil(t, res.LikesCount)
}

func TestHTTP_RequestShape(t *testing.T) {
	var gotMethod, gotPath, gotBody, gotType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotMethod, gotPath, gotBody, gotType = r.Method, r.URL.Path, string(b), r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 9, "content": "x"})
	}))
	defer ts.Close()

	c := api.NewHTTP(ts.URL+"/api/", ts.Client())
	_, err := c.CreatePost(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/posts/", gotPath)
	assert.JSONEq(t, `{"content":""}`, gotBody)
	assert.Equal(t, "application/json", gotType)
}

func TestHTTP_ErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found"}`))
	}))
	defer ts.Close()

	_, err := api.NewHTTP(ts.URL, ts.Client()).FetchFeed(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "posts/feed/", apiErr.Path)

	detail, ok := domain.ServerDetail(err)
	assert.True(t, ok)
	assert.Equal(t, "Not found", detail)
}

func TestHTTP_ErrorWithoutDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := api.NewHTTP(ts.URL, ts.Client()).ToggleLike(context.Background(), 1)
	require.Error(t, err)
	_, ok := domain.ServerDetail(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTP_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	_, err := api.NewHTTP(base, nil).FetchFeed(context.Background())
	require.Error(t, err)
	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr))
}
