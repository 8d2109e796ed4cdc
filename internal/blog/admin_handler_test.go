package blog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codigohunt/solutions-backend/internal/metrics"
)

func TestNewAdminHandler_routes(t *testing.T) {
	r := mux.NewRouter()
	handler := NewAdminHandler(NewService(newTestStore()), metrics.NewTestManager())
	require.NotNil(t, handler)
	handler.SetupRoutes(r)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"admin-posts": {
			name:   "admin-posts",
			path:   "/admin/blog/posts",
			method: "GET",
		},
		"admin-new-post": {
			name:   "admin-new-post",
			path:   "/admin/blog/posts",
			method: "POST",
		},
		"admin-update-post": {
			name:   "admin-update-post",
			path:   "/admin/blog/posts/1",
			method: "PUT",
		},
		"admin-delete-post": {
			name:   "admin-delete-post",
			path:   "/admin/blog/posts/1",
			method: "DELETE",
		},
		"admin-post-status": {
			name:   "admin-post-status",
			path:   "/admin/blog/posts/1/status",
			method: "PATCH",
		},
		"admin-bulk": {
			name:   "admin-bulk",
			path:   "/admin/blog/bulk",
			method: "POST",
		},
		"admin-stats": {
			name:   "admin-stats",
			path:   "/admin/blog/stats",
			method: "GET",
		},
		"admin-export": {
			name:   "admin-export",
			path:   "/admin/blog/export",
			method: "GET",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			muxRoute := r.Get(route.name)
			require.NotNil(t, muxRoute)
			assert.True(t, muxRoute.Match(req, routeMatch), caseName)
		})
	}
}

func adminTestRouter(store *testStore) *mux.Router {
	r := mux.NewRouter()
	handler := NewAdminHandler(NewService(store), metrics.NewTestManager())
	handler.SetupRoutes(r)
	return r
}

func TestAdminHandler_handleList_seedsEmptyStore(t *testing.T) {
	store := newTestStore()
	r := adminTestRouter(store)

	req, err := http.NewRequest("GET", "/admin/blog/posts", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp adminPostsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, len(SamplePosts()), resp.Total)
}

func TestAdminHandler_handleList_filters(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Title: "Draft Post", Status: StatusDraft},
		Post{ID: "p2", Title: "Published Post", Status: StatusPublished},
	)
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("GET", "/admin/blog/posts?status=draft", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp adminPostsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "p1", resp.Posts[0].ID)
}

func TestAdminHandler_handleCreate(t *testing.T) {
	store := newTestStore()
	store.version = 1
	r := adminTestRouter(store)

	body := `{"title":"Hello World, DevOps!","excerpt":"An excerpt","content":"<p>Content</p>","status":"published"}`
	req, err := http.NewRequest("POST", "/admin/blog/posts", strings.NewReader(body))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "hello-world-devops", created.Slug)
	assert.Equal(t, StatusPublished, created.Status)

	require.NotNil(t, store.postByID(created.ID))
}

func TestAdminHandler_handleCreate_missingRequiredField(t *testing.T) {
	store := newTestStore()
	store.version = 1
	r := adminTestRouter(store)

	body := `{"title":"","excerpt":"An excerpt","content":"content"}`
	req, err := http.NewRequest("POST", "/admin/blog/posts", strings.NewReader(body))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "title")
	assert.Equal(t, 0, store.savesCount)
}

func TestAdminHandler_handleUpdate(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Title: "Old", Slug: "old", Excerpt: "e", Content: "c"})
	store.version = 1
	r := adminTestRouter(store)

	body := `{"title":"Brand New Title","excerpt":"e2","content":"c2"}`
	req, err := http.NewRequest("PUT", "/admin/blog/posts/p1", strings.NewReader(body))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "brand-new-title", updated.Slug)
	assert.Equal(t, "Brand New Title", store.postByID("p1").Title)
}

func TestAdminHandler_handleUpdate_notFound(t *testing.T) {
	store := newTestStore()
	store.version = 1
	r := adminTestRouter(store)

	body := `{"title":"T","excerpt":"e","content":"c"}`
	req, err := http.NewRequest("PUT", "/admin/blog/posts/ghost", strings.NewReader(body))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminHandler_handleDelete(t *testing.T) {
	store := newTestStore(Post{ID: "p1"}, Post{ID: "p2"})
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("DELETE", "/admin/blog/posts/p1", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "deleted:p1", rr.Body.String())
	assert.Nil(t, store.postByID("p1"))
	assert.NotNil(t, store.postByID("p2"))
}

func TestAdminHandler_handleSetStatus(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Status: StatusDraft})
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("PATCH", "/admin/blog/posts/p1/status", strings.NewReader(`{"status":"published"}`))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "updated:p1", rr.Body.String())
	assert.Equal(t, StatusPublished, store.postByID("p1").Status)

	// invalid target status
	req, err = http.NewRequest("PATCH", "/admin/blog/posts/p1/status", strings.NewReader(`{"status":"nonsense"}`))
	require.NoError(t, err)
	rr = httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminHandler_handleBulk(t *testing.T) {
	store := newTestStore(
		Post{ID: "id1", Status: StatusPublished},
		Post{ID: "id2", Status: StatusPublished},
		Post{ID: "id3", Status: StatusPublished},
	)
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("POST", "/admin/blog/bulk", strings.NewReader(`{"ids":["id1","id2"],"action":"archive"}`))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "archive:2", rr.Body.String())

	assert.Equal(t, StatusArchived, store.postByID("id1").Status)
	assert.Equal(t, StatusArchived, store.postByID("id2").Status)
	assert.Equal(t, StatusPublished, store.postByID("id3").Status)

	// empty selection rejected
	req, err = http.NewRequest("POST", "/admin/blog/bulk", strings.NewReader(`{"ids":[],"action":"archive"}`))
	require.NoError(t, err)
	rr = httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminHandler_handleStats(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Status: StatusPublished, Featured: true, Views: 5, Likes: 1},
		Post{ID: "p2", Status: StatusDraft},
	)
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("GET", "/admin/blog/stats", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Published)
	assert.Equal(t, 1, stats.Draft)
	assert.Equal(t, 1, stats.Featured)
}

func TestAdminHandler_handleExport(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Title: "Exported Post", Tags: []string{}})
	store.version = 1
	r := adminTestRouter(store)

	req, err := http.NewRequest("GET", "/admin/blog/export", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "blog-posts-")
	assert.Contains(t, rr.Body.String(), "Exported Post")
}
