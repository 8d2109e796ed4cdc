package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// a conflicting concurrent writer loses the race at most this many times
// before the mutation gives up
const maxSaveRetries = 3

const relatedPostsLimit = 3

type BulkAction string

const (
	BulkDelete  BulkAction = "delete"
	BulkPublish BulkAction = "publish"
	BulkDraft   BulkAction = "draft"
	BulkArchive BulkAction = "archive"
	BulkFeature BulkAction = "feature"
)

func (a BulkAction) Valid() bool {
	switch a {
	case BulkDelete, BulkPublish, BulkDraft, BulkArchive, BulkFeature:
		return true
	}
	return false
}

var ErrInvalidStatus = errors.New("invalid post status")
var ErrInvalidBulkAction = errors.New("invalid bulk action")

type postStore interface {
	Load(ctx context.Context) ([]Post, int64, error)
	Save(ctx context.Context, posts []Post, expectedVersion int64) error
	AddLike(ctx context.Context, postID, visitorID string) (bool, error)
	RemoveLike(ctx context.Context, postID, visitorID string) (bool, error)
	HasLiked(ctx context.Context, postID, visitorID string) (bool, error)
	RemoveLikes(ctx context.Context, postID string) error
}

var _ postStore = (*Store)(nil)

type Stats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Draft      int `json:"draft"`
	Archived   int `json:"archived"`
	Featured   int `json:"featured"`
	TotalViews int `json:"totalViews"`
	TotalLikes int `json:"totalLikes"`
}

// Service owns every read and mutation of the post collection. Mutations
// are load - mutate - save, retried on version conflict.
type Service struct {
	store postStore
	now   func() time.Time
	newID func() string
}

func NewService(store postStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
	}
}

func (s *Service) mutate(ctx context.Context, fn func(posts []Post) ([]Post, error)) error {
	for attempt := 0; attempt < maxSaveRetries; attempt++ {
		posts, version, err := s.store.Load(ctx)
		if err != nil {
			return err
		}

		updated, err := fn(posts)
		if err != nil {
			return err
		}

		err = s.store.Save(ctx, updated, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
		log.Tracef("posts save conflict, attempt %d, retrying", attempt+1)
	}
	return ErrVersionConflict
}

func (s *Service) Create(ctx context.Context, input PostInput) (Post, error) {
	if err := input.Validate(); err != nil {
		return Post{}, err
	}
	if input.Status != "" && !input.Status.Valid() {
		return Post{}, ErrInvalidStatus
	}

	now := s.now()
	post := Post{
		ID:          s.newID(),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     SanitizeContent(input.Content),
		Author:      input.Author,
		PublishDate: input.PublishDate,
		ReadTime:    input.ReadTime,
		Category:    input.Category,
		Tags:        input.Tags,
		Featured:    input.Featured,
		Image:       input.Image,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if post.Author == "" {
		post.Author = Authors[0]
	}
	if post.PublishDate == "" {
		post.PublishDate = now.Format("2006-01-02")
	}
	if post.ReadTime <= 0 {
		post.ReadTime = 5
	}
	if post.Image == "" {
		post.Image = DefaultPostImage
	}
	if post.Status == "" {
		post.Status = StatusDraft
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}

	err := s.mutate(ctx, func(posts []Post) ([]Post, error) {
		post.Slug = dedupeSlug(slug, post.ID, posts)
		return append(posts, post), nil
	})
	if err != nil {
		return Post{}, err
	}

	return post, nil
}

func (s *Service) Update(ctx context.Context, id string, input PostInput) (Post, error) {
	if err := input.Validate(); err != nil {
		return Post{}, err
	}
	if input.Status != "" && !input.Status.Valid() {
		return Post{}, ErrInvalidStatus
	}

	var updated Post
	err := s.mutate(ctx, func(posts []Post) ([]Post, error) {
		i := indexOf(posts, id)
		if i < 0 {
			return nil, ErrPostNotFound
		}

		existing := posts[i]
		updated = Post{
			ID:          existing.ID,
			Title:       input.Title,
			Slug:        existing.Slug,
			Excerpt:     input.Excerpt,
			Content:     SanitizeContent(input.Content),
			Author:      input.Author,
			PublishDate: input.PublishDate,
			ReadTime:    input.ReadTime,
			Category:    input.Category,
			Tags:        input.Tags,
			Featured:    input.Featured,
			Image:       input.Image,
			Status:      input.Status,
			Views:       existing.Views,
			Likes:       existing.Likes,
			CreatedAt:   existing.CreatedAt,
			UpdatedAt:   s.now(),
		}

		switch {
		case input.Slug != "":
			updated.Slug = dedupeSlug(input.Slug, id, posts)
		case input.Title != existing.Title:
			updated.Slug = dedupeSlug(Slugify(input.Title), id, posts)
		}

		// blank optional fields keep their stored values, like status
		if updated.Author == "" {
			updated.Author = existing.Author
		}
		if updated.PublishDate == "" {
			updated.PublishDate = existing.PublishDate
		}
		if updated.ReadTime <= 0 {
			updated.ReadTime = existing.ReadTime
		}
		if updated.Image == "" {
			updated.Image = DefaultPostImage
		}
		if updated.Status == "" {
			updated.Status = existing.Status
		}
		if updated.Tags == nil {
			updated.Tags = []string{}
		}

		posts[i] = updated
		return posts, nil
	})
	if err != nil {
		return Post{}, err
	}
	return updated, nil
}

// Delete removes the record permanently, no undo. A missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(posts []Post) ([]Post, error) {
		kept := make([]Post, 0, len(posts))
		for _, p := range posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	if err := s.store.RemoveLikes(ctx, id); err != nil {
		log.Errorf("delete post %s: cleanup likes: %s", id, err)
	}
	return nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.mutate(ctx, func(posts []Post) ([]Post, error) {
		i := indexOf(posts, id)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		posts[i].Status = status
		posts[i].UpdatedAt = s.now()
		return posts, nil
	})
}

// Bulk applies one action to every targeted id in a single collection
// pass and a single save. Missing ids are skipped.
func (s *Service) Bulk(ctx context.Context, ids []string, action BulkAction) error {
	if !action.Valid() {
		return ErrInvalidBulkAction
	}

	targeted := make(map[string]bool, len(ids))
	for _, id := range ids {
		targeted[id] = true
	}

	err := s.mutate(ctx, func(posts []Post) ([]Post, error) {
		now := s.now()

		if action == BulkDelete {
			kept := make([]Post, 0, len(posts))
			for _, p := range posts {
				if !targeted[p.ID] {
					kept = append(kept, p)
				}
			}
			return kept, nil
		}

		for i := range posts {
			if !targeted[posts[i].ID] {
				continue
			}
			switch action {
			case BulkPublish:
				posts[i].Status = StatusPublished
			case BulkDraft:
				posts[i].Status = StatusDraft
			case BulkArchive:
				posts[i].Status = StatusArchived
			case BulkFeature:
				posts[i].Featured = true
			}
			posts[i].UpdatedAt = now
		}
		return posts, nil
	})
	if err != nil {
		return err
	}

	if action == BulkDelete {
		for _, id := range ids {
			if err := s.store.RemoveLikes(ctx, id); err != nil {
				log.Errorf("bulk delete: cleanup likes %s: %s", id, err)
			}
		}
	}
	return nil
}

// IncrementView bumps the view counter, every page load counts.
// A missing id is a no-op.
func (s *Service) IncrementView(ctx context.Context, id string) error {
	return s.mutate(ctx, func(posts []Post) ([]Post, error) {
		if i := indexOf(posts, id); i >= 0 {
			posts[i].Views++
		}
		return posts, nil
	})
}

// ToggleLike flips the visitor's like on a post and adjusts the counter
// accordingly. Returns the resulting toggle state and counter value.
// The visitor set and the counter must never diverge: the post is
// checked first, and a failed counter save rolls the set change back.
func (s *Service) ToggleLike(ctx context.Context, postID, visitorID string) (liked bool, likes int, err error) {
	posts, _, err := s.store.Load(ctx)
	if err != nil {
		return false, 0, err
	}
	if indexOf(posts, postID) < 0 {
		return false, 0, ErrPostNotFound
	}

	alreadyLiked, err := s.store.HasLiked(ctx, postID, visitorID)
	if err != nil {
		return false, 0, err
	}

	delta := 1
	if alreadyLiked {
		if _, err := s.store.RemoveLike(ctx, postID, visitorID); err != nil {
			return false, 0, err
		}
		delta = -1
	} else {
		if _, err := s.store.AddLike(ctx, postID, visitorID); err != nil {
			return false, 0, err
		}
	}

	err = s.mutate(ctx, func(posts []Post) ([]Post, error) {
		i := indexOf(posts, postID)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		posts[i].Likes += delta
		if posts[i].Likes < 0 {
			posts[i].Likes = 0
		}
		likes = posts[i].Likes
		return posts, nil
	})
	if err != nil {
		s.rollbackLike(ctx, postID, visitorID, alreadyLiked)
		return false, 0, err
	}

	return !alreadyLiked, likes, nil
}

func (s *Service) rollbackLike(ctx context.Context, postID, visitorID string, wasLiked bool) {
	var err error
	if wasLiked {
		_, err = s.store.AddLike(ctx, postID, visitorID)
	} else {
		_, err = s.store.RemoveLike(ctx, postID, visitorID)
	}
	if err != nil {
		log.Errorf("roll back like for post %s, visitor %s: %s", postID, visitorID, err)
	}
}

func (s *Service) HasLiked(ctx context.Context, postID, visitorID string) (bool, error) {
	return s.store.HasLiked(ctx, postID, visitorID)
}

func (s *Service) ListPublished(ctx context.Context, search, category, tag string) ([]Post, error) {
	posts, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return PublicView(posts, search, category, tag), nil
}

// GetBySlug returns the first published post with a matching slug, its
// related posts, and bumps the view counter as a side effect.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Post, []Post, error) {
	var found Post
	err := s.mutate(ctx, func(posts []Post) ([]Post, error) {
		for i := range posts {
			if posts[i].Slug == slug && posts[i].Status == StatusPublished {
				posts[i].Views++
				found = posts[i]
				return posts, nil
			}
		}
		return nil, ErrPostNotFound
	})
	if err != nil {
		return Post{}, nil, err
	}

	posts, _, err := s.store.Load(ctx)
	if err != nil {
		return Post{}, nil, err
	}
	return found, RelatedTo(posts, found, relatedPostsLimit), nil
}

// RelatedTo: published posts in the same category, excluding the post
// itself, collection order, truncated to limit.
func RelatedTo(posts []Post, post Post, limit int) []Post {
	related := make([]Post, 0, limit)
	for _, p := range posts {
		if p.ID == post.ID || p.Status != StatusPublished || p.Category != post.Category {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}

// All returns the full collection for the admin surface, seeding the
// empty store with the sample collection first.
func (s *Service) All(ctx context.Context) ([]Post, error) {
	posts, version, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 && version == 0 {
		posts = SamplePosts()
		if err := s.store.Save(ctx, posts, 0); err != nil {
			if !errors.Is(err, ErrVersionConflict) {
				return nil, fmt.Errorf("seed posts: %w", err)
			}
			// somebody else seeded in the meantime
			posts, _, err = s.store.Load(ctx)
			if err != nil {
				return nil, err
			}
		} else {
			log.Debugf("posts slot was empty, seeded %d sample posts", len(posts))
		}
	}

	return posts, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	posts, _, err := s.store.Load(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(posts)}
	for _, p := range posts {
		switch p.Status {
		case StatusPublished:
			stats.Published++
		case StatusDraft:
			stats.Draft++
		case StatusArchived:
			stats.Archived++
		}
		if p.Featured {
			stats.Featured++
		}
		stats.TotalViews += p.Views
		stats.TotalLikes += p.Likes
	}
	return stats, nil
}

// Export serializes the full collection for the admin download.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	posts, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal posts export: %w", err)
	}

	filename := fmt.Sprintf("blog-posts-%s.json", s.now().Format("2006-01-02"))
	return data, filename, nil
}

func indexOf(posts []Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

// CategoriesList returns the fixed category set, for the admin form.
func CategoriesList() []string {
	return append([]string(nil), Categories...)
}

// AuthorsList returns the fixed author set, for the admin form.
func AuthorsList() []string {
	return append([]string(nil), Authors...)
}
