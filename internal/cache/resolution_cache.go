package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResolutionCache is a Redis read-through layer in front of the durable
// resolutions collection. SetNX keeps the first written text, matching the
// first-writer-wins contract of the durable store.
type ResolutionCache interface {
	Get(ctx context.Context, questionID string) (string, bool, error)
	SetNX(ctx context.Context, questionID, text string) error
}

type resolutionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResolutionCache creates a new resolution cache
func NewResolutionCache(client *redis.Client) ResolutionCache {
	return &resolutionCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *resolutionCache) key(questionID string) string {
	return fmt.Sprintf("resolution:%s", questionID)
}

func (c *resolutionCache) Get(ctx context.Context, questionID string) (string, bool, error) {
	text, err := c.client.Get(ctx, c.key(questionID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *resolutionCache) SetNX(ctx context.Context, questionID, text string) error {
	return c.client.SetNX(ctx, c.key(questionID), text, c.ttl).Err()
}
