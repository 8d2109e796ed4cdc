package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal/metrics"
	"github.com/codigohunt/solutions-backend/pkg"
)

type setStatusRequest struct {
	Status Status `json:"status"`
}

type bulkRequest struct {
	IDs    []string   `json:"ids"`
	Action BulkAction `json:"action"`
}

type adminPostsResponse struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}

type adminService interface {
	All(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, input PostInput) (Post, error)
	Update(ctx context.Context, id string, input PostInput) (Post, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status Status) error
	Bulk(ctx context.Context, ids []string, action BulkAction) error
	Stats(ctx context.Context) (Stats, error)
	Export(ctx context.Context) ([]byte, string, error)
}

var _ adminService = (*Service)(nil)

// AdminHandler is the CMS surface: full CRUD plus bulk actions, stats
// and export. Gated by the auth middleware, all statuses visible.
type AdminHandler struct {
	service adminService
	metrics *metrics.Manager
}

func NewAdminHandler(service adminService, metricsManager *metrics.Manager) *AdminHandler {
	return &AdminHandler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *AdminHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/admin/blog/posts", handler.handleList).Methods("GET", "OPTIONS").Name("admin-posts")
	router.HandleFunc("/admin/blog/posts", handler.handleCreate).Methods("POST").Name("admin-new-post")
	router.HandleFunc("/admin/blog/posts/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("admin-update-post")
	router.HandleFunc("/admin/blog/posts/{id}", handler.handleDelete).Methods("DELETE").Name("admin-delete-post")
	router.HandleFunc("/admin/blog/posts/{id}/status", handler.handleSetStatus).Methods("PATCH", "OPTIONS").Name("admin-post-status")
	router.HandleFunc("/admin/blog/bulk", handler.handleBulk).Methods("POST", "OPTIONS").Name("admin-bulk")
	router.HandleFunc("/admin/blog/stats", handler.handleStats).Methods("GET").Name("admin-stats")
	router.HandleFunc("/admin/blog/export", handler.handleExport).Methods("GET").Name("admin-export")
}

func (handler *AdminHandler) handleList(w http.ResponseWriter, r *http.Request) {
	posts, err := handler.service.All(r.Context())
	if err != nil {
		log.Errorf("admin list posts: %s", err)
		http.Error(w, "failed to get blog posts", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	view := AdminView(
		posts,
		query.Get("search"),
		Status(query.Get("status")),
		query.Get("category"),
		SortField(query.Get("sort")),
		SortOrder(query.Get("order")),
	)

	respJson, err := json.Marshal(adminPostsResponse{
		Posts: view,
		Total: len(view),
	})
	if err != nil {
		log.Errorf("marshal admin posts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *AdminHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Errorf("new post, unmarshal json params: %s", err)
		http.Error(w, "add post failed", http.StatusBadRequest)
		return
	}

	post, err := handler.service.Create(r.Context(), input)
	if err != nil {
		writeMutationError(w, "add post failed", err)
		return
	}

	handler.metrics.CounterPostsCreated.Inc()
	log.Tracef("new post %s: [%s] added", post.ID, post.Title)

	respJson, err := json.Marshal(post)
	if err != nil {
		log.Errorf("marshal created post: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *AdminHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var input PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Errorf("update post, unmarshal json params: %s", err)
		http.Error(w, "update post failed", http.StatusBadRequest)
		return
	}

	post, err := handler.service.Update(r.Context(), id, input)
	if err != nil {
		writeMutationError(w, "update post failed", err)
		return
	}

	respJson, err := json.Marshal(post)
	if err != nil {
		log.Errorf("marshal updated post: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *AdminHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := handler.service.Delete(r.Context(), id); err != nil {
		log.Errorf("delete post %s: %s", id, err)
		http.Error(w, "delete post failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%s", id))
}

func (handler *AdminHandler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set post status, unmarshal json params: %s", err)
		http.Error(w, "set status failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetStatus(r.Context(), id, req.Status); err != nil {
		writeMutationError(w, "set status failed", err)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%s", id))
}

func (handler *AdminHandler) handleBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("bulk action, unmarshal json params: %s", err)
		http.Error(w, "bulk action failed", http.StatusBadRequest)
		return
	}

	if len(req.IDs) == 0 {
		http.Error(w, "error, no posts selected", http.StatusBadRequest)
		return
	}

	if err := handler.service.Bulk(r.Context(), req.IDs, req.Action); err != nil {
		writeMutationError(w, "bulk action failed", err)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("%s:%d", req.Action, len(req.IDs)))
}

func (handler *AdminHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := handler.service.Stats(r.Context())
	if err != nil {
		log.Errorf("post stats: %s", err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *AdminHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	data, filename, err := handler.service.Export(r.Context())
	if err != nil {
		log.Errorf("export posts: %s", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, data, http.StatusOK)
}

func writeMutationError(w http.ResponseWriter, fallbackMsg string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidBulkAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, ErrVersionConflict):
		http.Error(w, "conflicting concurrent change, try again", http.StatusConflict)
	default:
		log.Errorf("%s: %s", fallbackMsg, err)
		http.Error(w, fallbackMsg, http.StatusInternalServerError)
	}
}
