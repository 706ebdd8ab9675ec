package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	recentlyViewedCap = 10
	recentlyViewedTTL = 30 * 24 * time.Hour
)

// RecentlyViewed keeps a per-user list of the last hotels looked at, newest
// first, capped to recentlyViewedCap entries.
type RecentlyViewed struct {
	client *redis.Client
}

func NewRecentlyViewed(client *redis.Client) *RecentlyViewed {
	return &RecentlyViewed{client: client}
}

func (r *RecentlyViewed) Record(ctx context.Context, userID, hotelID string) error {
	key := r.key(userID)
	pipe := r.client.TxPipeline()
	// Drop any earlier sighting of the hotel so re-viewing moves it to the front.
	pipe.LRem(ctx, key, 0, hotelID)
	pipe.LPush(ctx, key, hotelID)
	pipe.LTrim(ctx, key, 0, recentlyViewedCap-1)
	pipe.Expire(ctx, key, recentlyViewedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record viewed hotel: %w", err)
	}
	return nil
}

func (r *RecentlyViewed) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.LRange(ctx, r.key(userID), 0, recentlyViewedCap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list viewed hotels: %w", err)
	}
	return ids, nil
}

func (r *RecentlyViewed) key(userID string) string {
	return fmt.Sprintf("viewed:%s", userID)
}
