package blog

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	store := newTestStore()
	service := NewService(store)
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	service.newID = func() string { return "id-1" }

	created, err := service.Create(context.Background(), PostInput{
		Title:   "Hello World, DevOps!",
		Excerpt: "An excerpt",
		Content: "<p>Some content</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "hello-world-devops", created.Slug)
	assert.Equal(t, "<p>Some content</p>", created.Content)
	assert.Equal(t, StatusDraft, created.Status)
	assert.Equal(t, Authors[0], created.Author)
	assert.Equal(t, 5, created.ReadTime)
	assert.Equal(t, DefaultPostImage, created.Image)
	assert.Equal(t, "2025-01-10", created.PublishDate)
	assert.Equal(t, 0, created.Views)
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)

	stored := store.postByID("id-1")
	require.NotNil(t, stored)
	assert.Equal(t, created.Slug, stored.Slug)
}

func TestService_Create_validation(t *testing.T) {
	store := newTestStore()
	service := NewService(store)

	_, err := service.Create(context.Background(), PostInput{
		Title:   "",
		Excerpt: "An excerpt",
		Content: "content",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)

	// no partial write happened
	posts, _, loadErr := store.Load(context.Background())
	require.NoError(t, loadErr)
	assert.Empty(t, posts)
}

func TestService_Create_sanitizesContent(t *testing.T) {
	store := newTestStore()
	service := NewService(store)
	service.newID = func() string { return "id-1" }

	created, err := service.Create(context.Background(), PostInput{
		Title:   "Title",
		Excerpt: "Excerpt",
		Content: `<p>fine</p><script>alert("boom")</script>`,
	})
	require.NoError(t, err)
	assert.Contains(t, created.Content, "<p>fine</p>")
	assert.NotContains(t, created.Content, "<script>")
}

func TestService_Create_slugDedup(t *testing.T) {
	store := newTestStore(Post{ID: "existing", Slug: "hello-world"})
	service := NewService(store)
	service.newID = func() string { return "id-1" }
	store.version = 1

	created, err := service.Create(context.Background(), PostInput{
		Title:   "Hello World",
		Excerpt: "Excerpt",
		Content: "content",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", created.Slug)
}

func TestService_Create_retriesOnConflict(t *testing.T) {
	store := newTestStore()
	store.conflictNextSaves = 2
	service := NewService(store)
	service.newID = func() string { return "id-1" }

	created, err := service.Create(context.Background(), PostInput{
		Title:   "Title",
		Excerpt: "Excerpt",
		Content: "content",
	})
	require.NoError(t, err)
	require.NotNil(t, store.postByID(created.ID))

	// conflicts never stop, mutation gives up
	store.conflictNextSaves = maxSaveRetries
	_, err = service.Create(context.Background(), PostInput{
		Title:   "Another",
		Excerpt: "Excerpt",
		Content: "content",
	})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestService_Update(t *testing.T) {
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	store := newTestStore(Post{
		ID: "p1", Title: "Old Title", Slug: "old-title", Excerpt: "old",
		Content: "old content", Status: StatusPublished,
		Views: 42, Likes: 7, CreatedAt: createdAt, UpdatedAt: createdAt,
	})
	store.version = 1

	service := NewService(store)
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	updated, err := service.Update(context.Background(), "p1", PostInput{
		Title:   "New Title",
		Excerpt: "new excerpt",
		Content: "<p>new content</p>",
		Status:  StatusPublished,
	})
	require.NoError(t, err)

	// id, createdAt, views and likes survive the update
	assert.Equal(t, "p1", updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, 42, updated.Views)
	assert.Equal(t, 7, updated.Likes)
	assert.Equal(t, now, updated.UpdatedAt)

	// title changed and no explicit slug: slug re-derived
	assert.Equal(t, "new-title", updated.Slug)
}

func TestService_Update_slugKeptWhenTitleUnchanged(t *testing.T) {
	store := newTestStore(Post{
		ID: "p1", Title: "Same Title", Slug: "custom-slug",
		Excerpt: "old", Content: "old", Status: StatusDraft,
	})
	store.version = 1
	service := NewService(store)

	updated, err := service.Update(context.Background(), "p1", PostInput{
		Title:   "Same Title",
		Excerpt: "new excerpt",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", updated.Slug)
}

func TestService_Update_keepsStoredOptionalFields(t *testing.T) {
	store := newTestStore(Post{
		ID: "p1", Title: "Title", Slug: "title", Excerpt: "old", Content: "old",
		Author: "Akshay Gupta", PublishDate: "2024-11-05", ReadTime: 8,
		Status: StatusPublished,
	})
	store.version = 1
	service := NewService(store)

	// input without author, publish date or read time must not blank them
	updated, err := service.Update(context.Background(), "p1", PostInput{
		Title:   "Title",
		Excerpt: "new excerpt",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "Akshay Gupta", updated.Author)
	assert.Equal(t, "2024-11-05", updated.PublishDate)
	assert.Equal(t, 8, updated.ReadTime)
}

func TestService_Update_notFound(t *testing.T) {
	store := newTestStore()
	service := NewService(store)

	_, err := service.Update(context.Background(), "nope", PostInput{
		Title:   "Title",
		Excerpt: "Excerpt",
		Content: "content",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_Delete(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Title: "one"},
		Post{ID: "p2", Title: "two"},
	)
	store.version = 1
	store.likes["p1"] = map[string]bool{"visitor": true}
	service := NewService(store)

	require.NoError(t, service.Delete(context.Background(), "p1"))
	assert.Nil(t, store.postByID("p1"))
	assert.NotNil(t, store.postByID("p2"))
	assert.Empty(t, store.likes["p1"])

	// deleting a missing id is a no-op
	require.NoError(t, service.Delete(context.Background(), "ghost"))
	assert.NotNil(t, store.postByID("p2"))
}

func TestService_SetStatus_idempotent(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Status: StatusPublished})
	store.version = 1
	service := NewService(store)

	require.NoError(t, service.SetStatus(context.Background(), "p1", StatusArchived))
	firstUpdatedAt := store.postByID("p1").UpdatedAt
	assert.Equal(t, StatusArchived, store.postByID("p1").Status)

	// archiving twice lands on the same final status
	require.NoError(t, service.SetStatus(context.Background(), "p1", StatusArchived))
	assert.Equal(t, StatusArchived, store.postByID("p1").Status)
	assert.False(t, store.postByID("p1").UpdatedAt.Before(firstUpdatedAt))

	assert.ErrorIs(t, service.SetStatus(context.Background(), "p1", Status("nonsense")), ErrInvalidStatus)
	assert.ErrorIs(t, service.SetStatus(context.Background(), "ghost", StatusDraft), ErrPostNotFound)
}

func TestService_Bulk_archive(t *testing.T) {
	store := newTestStore(
		Post{ID: "id1", Status: StatusPublished},
		Post{ID: "id2", Status: StatusDraft},
		Post{ID: "id3", Status: StatusPublished},
	)
	store.version = 1
	service := NewService(store)
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	require.NoError(t, service.Bulk(context.Background(), []string{"id1", "id2"}, BulkArchive))

	posts, _, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, StatusArchived, store.postByID("id1").Status)
	assert.Equal(t, now, store.postByID("id1").UpdatedAt)
	assert.Equal(t, StatusArchived, store.postByID("id2").Status)
	assert.Equal(t, now, store.postByID("id2").UpdatedAt)

	// non-targeted post untouched
	assert.Equal(t, StatusPublished, store.postByID("id3").Status)
	assert.True(t, store.postByID("id3").UpdatedAt.IsZero())

	// one collection pass means one save
	assert.Equal(t, 1, store.savesCount)
}

func TestService_Bulk_deleteAndFeature(t *testing.T) {
	store := newTestStore(
		Post{ID: "id1"},
		Post{ID: "id2"},
		Post{ID: "id3"},
	)
	store.version = 1
	service := NewService(store)

	require.NoError(t, service.Bulk(context.Background(), []string{"id1", "id3"}, BulkDelete))
	posts, _, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "id2", posts[0].ID)

	require.NoError(t, service.Bulk(context.Background(), []string{"id2"}, BulkFeature))
	assert.True(t, store.postByID("id2").Featured)

	assert.ErrorIs(
		t,
		service.Bulk(context.Background(), []string{"id2"}, BulkAction("explode")),
		ErrInvalidBulkAction,
	)
}

func TestService_IncrementView(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Views: 10})
	store.version = 1
	service := NewService(store)

	require.NoError(t, service.IncrementView(context.Background(), "p1"))
	require.NoError(t, service.IncrementView(context.Background(), "p1"))
	assert.Equal(t, 12, store.postByID("p1").Views)

	// missing id is a no-op
	require.NoError(t, service.IncrementView(context.Background(), "ghost"))
}

func TestService_ToggleLike(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Likes: 5})
	store.version = 1
	service := NewService(store)

	liked, likes, err := service.ToggleLike(context.Background(), "p1", "visitor-1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 6, likes)

	// the toggle state survives, a second toggle unlikes
	liked, likes, err = service.ToggleLike(context.Background(), "p1", "visitor-1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 5, likes)

	// another visitor has their own state
	liked, likes, err = service.ToggleLike(context.Background(), "p1", "visitor-2")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 6, likes)

	_, _, err = service.ToggleLike(context.Background(), "ghost", "visitor-1")
	assert.ErrorIs(t, err, ErrPostNotFound)
	// no stray like set for a post that does not exist
	assert.Empty(t, store.likes["ghost"])
}

func TestService_ToggleLike_conflictRollsBack(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Likes: 5})
	store.version = 1
	store.conflictNextSaves = maxSaveRetries
	service := NewService(store)

	_, _, err := service.ToggleLike(context.Background(), "p1", "visitor-1")
	assert.ErrorIs(t, err, ErrVersionConflict)

	// the counter never moved, so the toggle must not stick either
	hasLiked, err := service.HasLiked(context.Background(), "p1", "visitor-1")
	require.NoError(t, err)
	assert.False(t, hasLiked)
	assert.Equal(t, 5, store.postByID("p1").Likes)

	// same for the unlike direction: the like is restored
	_, _, err = service.ToggleLike(context.Background(), "p1", "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 6, store.postByID("p1").Likes)

	store.conflictNextSaves = maxSaveRetries
	_, _, err = service.ToggleLike(context.Background(), "p1", "visitor-1")
	assert.ErrorIs(t, err, ErrVersionConflict)

	hasLiked, err = service.HasLiked(context.Background(), "p1", "visitor-1")
	require.NoError(t, err)
	assert.True(t, hasLiked)
	assert.Equal(t, 6, store.postByID("p1").Likes)
}

func TestService_GetBySlug(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Slug: "devops-post", Status: StatusPublished, Category: "DevOps", Views: 100},
		Post{ID: "p2", Slug: "another-devops-post", Status: StatusPublished, Category: "DevOps"},
		Post{ID: "p3", Slug: "draft-post", Status: StatusDraft, Category: "DevOps"},
	)
	store.version = 1
	service := NewService(store)

	post, related, err := service.GetBySlug(context.Background(), "devops-post")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	// the read side effect bumped the counter
	assert.Equal(t, 101, post.Views)
	assert.Equal(t, 101, store.postByID("p1").Views)

	require.Len(t, related, 1)
	assert.Equal(t, "p2", related[0].ID)

	// drafts are invisible by slug
	_, _, err = service.GetBySlug(context.Background(), "draft-post")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, _, err = service.GetBySlug(context.Background(), "nonexistent-slug")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_ListPublished(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Status: StatusDraft, PublishDate: "2024-12-22"},
		Post{ID: "p2", Status: StatusPublished, PublishDate: "2024-12-10"},
		Post{ID: "p3", Status: StatusPublished, PublishDate: "2024-12-20"},
	)
	store.version = 1
	service := NewService(store)

	posts, err := service.ListPublished(context.Background(), "", "", "")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p3", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
}

func TestService_All_seedsEmptyStore(t *testing.T) {
	store := newTestStore()
	service := NewService(store)

	posts, err := service.All(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, len(SamplePosts()))
	assert.Equal(t, "future-of-devops-2025", posts[0].Slug)

	// seeded once, not on every read
	posts, err = service.All(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, len(SamplePosts()))
	assert.Equal(t, 1, store.savesCount)
}

func TestService_Stats(t *testing.T) {
	store := newTestStore(
		Post{ID: "p1", Status: StatusPublished, Featured: true, Views: 10, Likes: 3},
		Post{ID: "p2", Status: StatusPublished, Views: 20, Likes: 2},
		Post{ID: "p3", Status: StatusDraft},
		Post{ID: "p4", Status: StatusArchived},
	)
	store.version = 1
	service := NewService(store)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Total:      4,
		Published:  2,
		Draft:      1,
		Archived:   1,
		Featured:   1,
		TotalViews: 30,
		TotalLikes: 5,
	}, stats)
}

func TestService_Export(t *testing.T) {
	store := newTestStore(Post{ID: "p1", Title: "Exported", Tags: []string{}})
	store.version = 1
	service := NewService(store)
	service.now = func() time.Time {
		return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	}

	data, filename, err := service.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "blog-posts-2025-03-04.json", filename)
	assert.Contains(t, string(data), `"Exported"`)
}

func TestService_Bulk_largeSelection(t *testing.T) {
	postsCount := 40
	posts := make([]Post, 0, postsCount)
	ids := make([]string, 0, postsCount)
	for i := 0; i < postsCount; i++ {
		id := strconv.Itoa(i + 1)
		title := gofakeit.Sentence(3)
		posts = append(posts, Post{
			ID:       id,
			Title:    title,
			Slug:     Slugify(title) + "-" + id,
			Excerpt:  gofakeit.Sentence(8),
			Content:  gofakeit.Paragraph(1, 3, 10, " "),
			Author:   Authors[i%len(Authors)],
			Category: Categories[i%len(Categories)],
			Status:   StatusPublished,
		})
		if i%2 == 0 {
			ids = append(ids, id)
		}
	}

	store := newTestStore(posts...)
	service := NewService(store)

	require.NoError(t, service.Bulk(context.Background(), ids, BulkArchive))
	assert.Equal(t, 1, store.savesCount)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, postsCount, stats.Total)
	assert.Equal(t, postsCount/2, stats.Archived)
	assert.Equal(t, postsCount/2, stats.Published)
}
