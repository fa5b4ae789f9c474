package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"calmcompass/internal/model"
)

// ErrNotFound is returned when no check-in exists (or it expired).
var ErrNotFound = errors.New("check-in not found")

// CheckinTTL bounds how long an abandoned check-in lingers.
const CheckinTTL = 30 * time.Minute

// CheckinCache holds the per-session check-in state. This is the only place
// session state lives; every render reloads from here so the crisis gate is
// always evaluated from the stored answer, never cached output.
type CheckinCache interface {
	Set(ctx context.Context, checkin *model.CheckIn) error
	Get(ctx context.Context, id string) (*model.CheckIn, error)
	Delete(ctx context.Context, id string) error
}

type checkinCache struct {
	client *redis.Client
}

func NewCheckinCache(client *redis.Client) CheckinCache {
	return &checkinCache{client: client}
}

func (c *checkinCache) Set(ctx context.Context, checkin *model.CheckIn) error {
	data, err := json.Marshal(checkin)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "checkin:"+checkin.ID, data, CheckinTTL).Err()
}

func (c *checkinCache) Get(ctx context.Context, id string) (*model.CheckIn, error) {
	data, err := c.client.Get(ctx, "checkin:"+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var checkin model.CheckIn
	if err := json.Unmarshal([]byte(data), &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *checkinCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "checkin:"+id).Err()
}
