package blog

import (
	"context"
	"sync"
)

// testStore is an in-memory postStore used in tests.
type testStore struct {
	mu      sync.Mutex
	posts   []Post
	version int64
	likes   map[string]map[string]bool

	// when > 0, the next saves fail with ErrVersionConflict
	conflictNextSaves int
	savesCount        int
}

var _ postStore = (*testStore)(nil)

func newTestStore(posts ...Post) *testStore {
	return &testStore{
		posts: posts,
		likes: map[string]map[string]bool{},
	}
}

func (s *testStore) Load(_ context.Context) ([]Post, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	return posts, s.version, nil
}

func (s *testStore) Save(_ context.Context, posts []Post, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflictNextSaves > 0 {
		s.conflictNextSaves--
		return ErrVersionConflict
	}
	if expectedVersion != s.version {
		return ErrVersionConflict
	}

	s.posts = make([]Post, len(posts))
	copy(s.posts, posts)
	s.version++
	s.savesCount++
	return nil
}

func (s *testStore) AddLike(_ context.Context, postID, visitorID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likes[postID] == nil {
		s.likes[postID] = map[string]bool{}
	}
	if s.likes[postID][visitorID] {
		return false, nil
	}
	s.likes[postID][visitorID] = true
	return true, nil
}

func (s *testStore) RemoveLike(_ context.Context, postID, visitorID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.likes[postID][visitorID] {
		return false, nil
	}
	delete(s.likes[postID], visitorID)
	return true, nil
}

func (s *testStore) HasLiked(_ context.Context, postID, visitorID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[postID][visitorID], nil
}

func (s *testStore) RemoveLikes(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, postID)
	return nil
}

func (s *testStore) postByID(id string) *Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}
