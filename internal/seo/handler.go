package seo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal/blog"
	"github.com/codigohunt/solutions-backend/pkg"
)

type postSource interface {
	ListPublished(ctx context.Context, search, category, tag string) ([]blog.Post, error)
}

var _ postSource = (*blog.Service)(nil)

// Handler serves page metadata for the rendering layer.
type Handler struct {
	registry *Registry
	posts    postSource
}

func NewHandler(registry *Registry, posts postSource) *Handler {
	return &Handler{
		registry: registry,
		posts:    posts,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/seo/meta/post/{slug}", handler.handlePostMeta).Methods("GET").Name("seo-post-meta")
	router.HandleFunc("/seo/meta/{page}", handler.handlePageMeta).Methods("GET").Name("seo-page-meta")
}

func (handler *Handler) handlePageMeta(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	page := vars["page"]

	meta, ok := handler.registry.Page(page)
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error":"page not found"}`, http.StatusNotFound)
		return
	}

	handler.writeMeta(w, meta)
}

func (handler *Handler) handlePostMeta(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	// metadata reads must not bump the view counter, so the published
	// listing is scanned instead of the reader path
	posts, err := handler.posts.ListPublished(r.Context(), "", "", "")
	if err != nil {
		log.Errorf("seo post meta, list published: %s", err)
		http.Error(w, "failed to get post metadata", http.StatusInternalServerError)
		return
	}

	for _, post := range posts {
		if post.Slug == slug {
			handler.writeMeta(w, handler.registry.ForPost(post))
			return
		}
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error":"post not found"}`, http.StatusNotFound)
}

func (handler *Handler) writeMeta(w http.ResponseWriter, meta Metadata) {
	respJson, err := json.Marshal(meta)
	if err != nil {
		log.Errorf("marshal page metadata: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
