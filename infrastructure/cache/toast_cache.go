package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ToastTTL is how long a success notice stays visible
const ToastTTL = 3 * time.Second

const toastKeyTemplate = "toast:%s"

// ToastCache keeps the transient notices produced by store mutations. Each
// user has a sorted set scored by expiry time; expired members are trimmed on
// read. Without a Redis client the notices live in process memory.
type ToastCache struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	memory map[string][]toastEntry
}

type toastEntry struct {
	message string
	expires time.Time
}

func NewToastCache(client *redis.Client) *ToastCache {
	c := &ToastCache{
		ttl:    ToastTTL,
		now:    time.Now,
		memory: map[string][]toastEntry{},
	}
	if client != nil {
		c.client = client
	}
	return c
}

var _ repository.IToastCache = (*ToastCache)(nil)

// WithClock replaces the time source, used by tests of the in-memory path
func (c *ToastCache) WithClock(now func() time.Time) *ToastCache {
	c.now = now
	return c
}

func (c *ToastCache) TTL() time.Duration {
	return c.ttl
}

func (c *ToastCache) Push(ctx context.Context, userID, message string) error {
	expires := c.now().Add(c.ttl)
	if c.client == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.memory[userID] = append(c.live(userID), toastEntry{message: message, expires: expires})
		return nil
	}

	key := fmt.Sprintf(toastKeyTemplate, userID)
	// the member carries a unique prefix so repeated notices are kept apart
	member := uuid.NewString() + "|" + message
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(expires.UnixMilli()), Member: member})
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while pushing toast")
	}
	return err
}

func (c *ToastCache) Active(ctx context.Context, userID string) ([]string, error) {
	if c.client == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		entries := c.live(userID)
		c.memory[userID] = entries
		messages := make([]string, 0, len(entries))
		for _, e := range entries {
			messages = append(messages, e.message)
		}
		return messages, nil
	}

	key := fmt.Sprintf(toastKeyTemplate, userID)
	nowMs := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.client.ZRemRangeByScore(ctx, key, "-inf", "("+nowMs).Err(); err != nil {
		return nil, err
	}
	members, err := c.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: nowMs, Max: "+inf"}).Result()
	if err != nil {
		return nil, err
	}
	messages := make([]string, 0, len(members))
	for _, m := range members {
		messages = append(messages, stripMember(m))
	}
	return messages, nil
}

// Record pushes the notice of a store event, if it has one. It is meant to be
// subscribed to the store.
func (c *ToastCache) Record(event model.StoreEvent) {
	if event.Message == "" || event.UserID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = c.Push(ctx, event.UserID, event.Message)
}

// live returns the unexpired in-memory entries of userID; c.mu must be held
func (c *ToastCache) live(userID string) []toastEntry {
	now := c.now()
	kept := c.memory[userID][:0:0]
	for _, e := range c.memory[userID] {
		if e.expires.After(now) {
			kept = append(kept, e)
		}
	}
	return kept
}

func stripMember(member string) string {
	if _, message, ok := strings.Cut(member, "|"); ok {
		return message
	}
	return member
}
