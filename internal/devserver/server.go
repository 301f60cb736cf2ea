package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"mural/internal/domain"
)

// LikeResponse selects the body shape of the like toggle endpoint.
type LikeResponse string

const (
	LikeResponseMessage LikeResponse = "message"
	LikeResponseFields  LikeResponse = "fields"
	LikeResponseBoth    LikeResponse = "both"
)

// ParseLikeResponse validates a LikeResponse name.
func ParseLikeResponse(s string) (LikeResponse, bool) {
	switch r := LikeResponse(strings.ToLower(s)); r {
	case LikeResponseMessage, LikeResponseFields, LikeResponseBoth:
		return r, true
	}
	return "", false
}

type memoryStore struct {
	mu     sync.RWMutex
	nextID domain.PostID
	posts  []*domain.Post // oldest first
	byID   map[domain.PostID]*domain.Post
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID: 1,
		byID:   make(map[domain.PostID]*domain.Post),
	}
}

func (ms *memoryStore) add(content string, now time.Time) domain.Post {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	created, _ := json.Marshal(now.UTC().Format(time.RFC3339))
	p := &domain.Post{
		ID:      ms.nextID,
		Content: content,
		Extra:   map[string]json.RawMessage{"created_at": created},
	}
	ms.nextID++
	ms.posts = append(ms.posts, p)
	ms.byID[p.ID] = p
	return p.Clone()
}

func (ms *memoryStore) feed() []domain.Post {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]domain.Post, 0, len(ms.posts))
	for i := len(ms.posts) - 1; i >= 0; i-- {
		out = append(out, ms.posts[i].Clone())
	}
	return out
}

func (ms *memoryStore) toggle(id domain.PostID) (domain.Post, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p, ok := ms.byID[id]
	if !ok {
		return domain.Post{}, false
	}
	if p.LikedByUser {
		p.LikedByUser = false
		p.LikesCount = max(0, p.LikesCount-1)
	} else {
		p.LikedByUser = true
		p.LikesCount++
	}
	return p.Clone(), true
}

// Server serves the posts API from memory.
type Server struct {
	store  *memoryStore
	like   LikeResponse
	logger *slog.Logger
	now    func() time.Time
}

// New returns a Server. An empty like response defaults to LikeResponseMessage.
func New(like LikeResponse, logger *slog.Logger) *Server {
	if like == "" {
		like = LikeResponseMessage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: newMemoryStore(), like: like, logger: logger, now: time.Now}
}

// Seed adds posts with the given contents, oldest first.
func (s *Server) Seed(contents ...string) {
	for _, c := range contents {
		s.store.add(c, s.now())
	}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.accessLog)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/feed/", s.handleFeed)
		r.Post("/", s.handleCreate)
		r.Post("/{id}/like/", s.handleLike)
	})
	return r
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.feed())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req domain.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	writeJSON(w, http.StatusCreated, s.store.add(req.Content, s.now()))
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}
	p, ok := s.store.toggle(domain.PostID(n))
	if !ok {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}

	var res domain.LikeResult
	if s.like == LikeResponseFields || s.like == LikeResponseBoth {
		res.Liked = &p.LikedByUser
		res.LikesCount = &p.LikesCount
	}
	if s.like == LikeResponseMessage || s.like == LikeResponseBoth {
		msg := domain.UnlikedMessage
		if p.LikedByUser {
			msg = domain.LikedMessage
		}
		res.Message = &msg
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chiMiddleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
