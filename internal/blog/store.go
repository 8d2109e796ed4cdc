package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal/telemetry/tracing"
)

const (
	postsSlotKey   = "codigohunt-blog-posts"
	likesKeyPrefix = "codigohunt-blog-likes||"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrVersionConflict: the slot was written by somebody else between
	// our load and save, the caller has to reload and retry
	ErrVersionConflict = errors.New("post collection version conflict")
)

// storedCollection is the JSON envelope kept in the single redis slot.
// Version goes up by one on every successful save.
type storedCollection struct {
	Version int64  `json:"version"`
	Posts   []Post `json:"posts"`
}

// Store keeps the whole post collection in one redis slot,
// load-all / save-all, with optimistic concurrency on save.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load returns the full collection and its version. An absent slot yields
// an empty collection and version 0. A corrupt slot yields the same, with
// a logged warning, never an error to the caller.
func (s *Store) Load(ctx context.Context) ([]Post, int64, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogStore.load")
	defer span.End()

	raw, err := s.rdb.Get(ctx, postsSlotKey).Result()
	if errors.Is(err, redis.Nil) {
		return []Post{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("get posts slot: %w", err)
	}

	var col storedCollection
	if err := json.Unmarshal([]byte(raw), &col); err != nil {
		log.Warnf("posts slot corrupt, starting from an empty collection: %s", err)
		return []Post{}, 0, nil
	}

	return col.Posts, col.Version, nil
}

// Save overwrites the whole slot, but only if the stored version still
// matches expectedVersion. Returns ErrVersionConflict otherwise.
func (s *Store) Save(ctx context.Context, posts []Post, expectedVersion int64) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogStore.save")
	defer span.End()

	next := storedCollection{
		Version: expectedVersion + 1,
		Posts:   posts,
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal posts collection: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, postsSlotKey).Result()
		switch {
		case errors.Is(err, redis.Nil):
			if expectedVersion != 0 {
				return ErrVersionConflict
			}
		case err != nil:
			return fmt.Errorf("get posts slot: %w", err)
		default:
			var current storedCollection
			if err := json.Unmarshal([]byte(raw), &current); err == nil && current.Version != expectedVersion {
				return ErrVersionConflict
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, postsSlotKey, data, 0)
			return nil
		})
		return err
	}

	err = s.rdb.Watch(ctx, txf, postsSlotKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	return err
}

func likesKey(postID string) string {
	return likesKeyPrefix + postID
}

// AddLike records that a visitor liked a post. Returns false when the
// visitor already liked it.
func (s *Store) AddLike(ctx context.Context, postID, visitorID string) (bool, error) {
	added, err := s.rdb.SAdd(ctx, likesKey(postID), visitorID).Result()
	if err != nil {
		return false, fmt.Errorf("add like %s: %w", postID, err)
	}
	return added == 1, nil
}

// RemoveLike removes a visitor's like. Returns false when there was
// nothing to remove.
func (s *Store) RemoveLike(ctx context.Context, postID, visitorID string) (bool, error) {
	removed, err := s.rdb.SRem(ctx, likesKey(postID), visitorID).Result()
	if err != nil {
		return false, fmt.Errorf("remove like %s: %w", postID, err)
	}
	return removed == 1, nil
}

func (s *Store) HasLiked(ctx context.Context, postID, visitorID string) (bool, error) {
	liked, err := s.rdb.SIsMember(ctx, likesKey(postID), visitorID).Result()
	if err != nil {
		return false, fmt.Errorf("check like %s: %w", postID, err)
	}
	return liked, nil
}

func (s *Store) RemoveLikes(ctx context.Context, postID string) error {
	if err := s.rdb.Del(ctx, likesKey(postID)).Err(); err != nil {
		return fmt.Errorf("remove likes %s: %w", postID, err)
	}
	return nil
}
