package blog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codigohunt/solutions-backend/internal/metrics"
)

func TestNewHandler_routes(t *testing.T) {
	r := mux.NewRouter()
	handler := NewHandler(NewService(newTestStore()), metrics.NewTestManager())
	require.NotNil(t, handler)
	handler.SetupRoutes(r)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"published-posts": {
			name:   "published-posts",
			path:   "/blog/posts",
			method: "GET",
		},
		"post-by-slug": {
			name:   "post-by-slug",
			path:   "/blog/posts/future-of-devops-2025",
			method: "GET",
		},
		"toggle-like": {
			name:   "toggle-like",
			path:   "/blog/posts/1/like",
			method: "POST",
		},
		"toggle-like-options": {
			name:   "toggle-like",
			path:   "/blog/posts/1/like",
			method: "OPTIONS",
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

func publicTestRouter(store *testStore) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(NewService(store), metrics.NewTestManager())
	handler.SetupRoutes(r)
	return r
}

func TestHandler_handleListPublished(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Title: "Newest", Status: StatusPublished, PublishDate: "2024-12-20", Featured: true},
		Post{ID: "p2", Title: "Oldest", Status: StatusPublished, PublishDate: "2024-12-10"},
		Post{ID: "p3", Title: "Hidden Draft", Status: StatusDraft, PublishDate: "2024-12-22"},
	)
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("GET", "/blog/posts", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp PostsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Featured, 1)
	assert.Equal(t, "p1", resp.Featured[0].ID)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "p2", resp.Posts[0].ID)
}

func TestHandler_handleListPublished_search(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Title: "Kubernetes Guide", Status: StatusPublished, PublishDate: "2024-12-20"},
		Post{ID: "p2", Title: "AWS Bill", Status: StatusPublished, PublishDate: "2024-12-10"},
	)
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("GET", "/blog/posts?search=kubernetes", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp PostsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "p1", resp.Posts[0].ID)
}

func TestHandler_handleGetBySlug(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Slug: "devops-post", Status: StatusPublished, Category: "DevOps", Views: 7},
		Post{ID: "p2", Slug: "related-post", Status: StatusPublished, Category: "DevOps"},
	)
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("GET", "/blog/posts/devops-post", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp PostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "p1", resp.Post.ID)
	assert.Equal(t, 8, resp.Post.Views)
	require.Len(t, resp.Related, 1)
	assert.Equal(t, "p2", resp.Related[0].ID)
	assert.False(t, resp.Liked)
}

func TestHandler_handleGetBySlug_notFound(t *testing.T) {
	store := newTestStore()
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("GET", "/blog/posts/nonexistent-slug", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	// not-found state, not a hard failure
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"error":"post not found"}`, rr.Body.String())
}

func TestHandler_handleToggleLike(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Slug: "some-post", Status: StatusPublished, Likes: 3})
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("POST", "/blog/posts/p1/like", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// server minted a visitor id for us
	visitorID := rr.Header().Get(VisitorIDHeader)
	require.NotEmpty(t, visitorID)

	var resp likeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, 4, resp.Likes)

	// same visitor toggles the like off
	req, err = http.NewRequest("POST", "/blog/posts/p1/like", nil)
	require.NoError(t, err)
	req.Header.Set(VisitorIDHeader, visitorID)
	rr = httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
	assert.Equal(t, 3, resp.Likes)
}

func TestHandler_handleToggleLike_notFound(t *testing.T) {
	store := newTestStore()
	store.version = 1
	r := publicTestRouter(store)

	req, err := http.NewRequest("POST", "/blog/posts/ghost/like", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
