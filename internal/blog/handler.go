package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal/metrics"
	"github.com/codigohunt/solutions-backend/pkg"
)

// VisitorIDHeader identifies an anonymous visitor for the like toggle.
// Minted by the server and echoed back when the client sends none.
const VisitorIDHeader = "X-CH-VISITOR"

type PostsResponse struct {
	Featured []Post `json:"featured"`
	Posts    []Post `json:"posts"`
	Total    int    `json:"total"`
}

type PostResponse struct {
	Post    Post   `json:"post"`
	Related []Post `json:"related"`
	Liked   bool   `json:"liked"`
}

type likeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type postService interface {
	ListPublished(ctx context.Context, search, category, tag string) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, []Post, error)
	ToggleLike(ctx context.Context, postID, visitorID string) (bool, int, error)
	HasLiked(ctx context.Context, postID, visitorID string) (bool, error)
}

var _ postService = (*Service)(nil)

// Handler is the anonymous reader surface: published posts only.
type Handler struct {
	service postService
	metrics *metrics.Manager
}

func NewHandler(service postService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/blog/posts", handler.handleListPublished).Methods("GET").Name("published-posts")
	router.HandleFunc("/blog/posts/{slug}", handler.handleGetBySlug).Methods("GET").Name("post-by-slug")
	router.HandleFunc("/blog/posts/{id}/like", handler.handleToggleLike).Methods("POST", "OPTIONS").Name("toggle-like")
}

func (handler *Handler) handleListPublished(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	posts, err := handler.service.ListPublished(
		r.Context(),
		query.Get("search"),
		query.Get("category"),
		query.Get("tag"),
	)
	if err != nil {
		log.Errorf("list published posts: %s", err)
		http.Error(w, "failed to get blog posts", http.StatusInternalServerError)
		return
	}

	featured, regular := SplitFeatured(posts)
	resp := PostsResponse{
		Featured: featured,
		Posts:    regular,
		Total:    len(posts),
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal published posts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) handleGetBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	post, related, err := handler.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error":"post not found"}`, http.StatusNotFound)
			return
		}
		log.Errorf("get post by slug [%s]: %s", slug, err)
		http.Error(w, "failed to get blog post", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPostViews.Inc()

	liked := false
	if visitorID := r.Header.Get(VisitorIDHeader); visitorID != "" {
		if liked, err = handler.service.HasLiked(r.Context(), post.ID, visitorID); err != nil {
			log.Errorf("check liked [%s]: %s", post.ID, err)
			liked = false
		}
	}

	resp := PostResponse{
		Post:    post,
		Related: related,
		Liked:   liked,
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal post [%s]: %s", slug, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	visitorID := r.Header.Get(VisitorIDHeader)
	if visitorID == "" {
		visitorID = uuid.NewString()
	}
	// echoed back so the client can keep using the same identity
	w.Header().Set(VisitorIDHeader, visitorID)

	liked, likes, err := handler.service.ToggleLike(r.Context(), id, visitorID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error":"post not found"}`, http.StatusNotFound)
			return
		}
		log.Errorf("toggle like [%s]: %s", id, err)
		http.Error(w, "failed to like post", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(likeResponse{Liked: liked, Likes: likes})
	if err != nil {
		log.Errorf("marshal like response [%s]: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
