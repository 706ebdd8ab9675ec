package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// holdTTL bounds how long an availability-check-then-write window may keep a
// stay range locked if the holder crashes before releasing.
const holdTTL = 30 * time.Second

// RoomHold takes a short exclusive lock on a room type's nights while a
// booking request checks availability and writes. One key is set per night
// of the stay, so two requests whose ranges share any night contend on that
// night's key, while disjoint ranges of the same room type do not.
// Key format: hold:<room_type_id>:<night>
type RoomHold struct {
	client *redis.Client
}

func NewRoomHold(client *redis.Client) *RoomHold {
	return &RoomHold{client: client}
}

// Acquire locks every night of [checkIn, checkOut). It returns false without
// error when any night is already held, releasing the nights it took first.
func (h *RoomHold) Acquire(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (bool, error) {
	keys := holdKeys(roomTypeID, checkIn, checkOut)
	for i, key := range keys {
		ok, err := h.client.SetNX(ctx, key, "1", holdTTL).Result()
		if err != nil || !ok {
			if i > 0 {
				h.client.Del(ctx, keys[:i]...)
			}
			if err != nil {
				return false, fmt.Errorf("acquire room hold: %w", err)
			}
			return false, nil
		}
	}
	return true, nil
}

func (h *RoomHold) Release(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) error {
	keys := holdKeys(roomTypeID, checkIn, checkOut)
	if len(keys) == 0 {
		return nil
	}
	return h.client.Del(ctx, keys...).Err()
}

// holdKeys returns one key per night of the half-open range, so back-to-back
// stays (checkout day equals the next check-in day) never share a key.
func holdKeys(roomTypeID string, checkIn, checkOut time.Time) []string {
	var keys []string
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		keys = append(keys, fmt.Sprintf("hold:%s:%s", roomTypeID, d.Format("2006-01-02")))
	}
	return keys
}
