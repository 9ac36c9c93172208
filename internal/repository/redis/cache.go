package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

const (
	mentorCachePrefix = "mentors:"
	mentorCacheTTL    = 1 * time.Minute
)

// MentorCache keeps mentor directory listings in Redis, keyed by the filter
// and ordering of the query. Entries are short-lived and flushed whenever
// any profile changes.
type MentorCache struct {
	client *Client
}

// NewMentorCache creates a new mentor listing cache
func NewMentorCache(client *Client) *MentorCache {
	return &MentorCache{client: client}
}

func cacheKey(q domain.MentorQuery) string {
	return fmt.Sprintf("%sskill=%s&order=%s", mentorCachePrefix, q.Skill, q.OrderBy)
}

// Get retrieves a cached listing for the query. A miss returns nil, nil.
func (c *MentorCache) Get(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error) {
	data, err := c.client.rdb.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var mentors []domain.UserView
	if err := json.Unmarshal(data, &mentors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mentor listing: %w", err)
	}

	return mentors, nil
}

// Set caches a listing for the query
func (c *MentorCache) Set(ctx context.Context, q domain.MentorQuery, mentors []domain.UserView) error {
	data, err := json.Marshal(mentors)
	if err != nil {
		return fmt.Errorf("failed to marshal mentor listing: %w", err)
	}

	return c.client.rdb.Set(ctx, cacheKey(q), data, mentorCacheTTL).Err()
}

// FlushAll removes every cached listing
func (c *MentorCache) FlushAll(ctx context.Context) (int64, error) {
	pattern := mentorCachePrefix + "*"
	var cursor uint64
	var deleted int64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			count, err := c.client.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += count
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}
