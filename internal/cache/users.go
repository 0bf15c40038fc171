package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// UserCache resolves users by ID, keeping recent lookups in memory
//
//go:generate mockgen -source=users.go -destination=../mocks/user_cache.go -package=mocks -mock_names=UserCache=MockUserCache
type UserCache interface {
	// Get returns the user, or nil when it does not exist
	Get(ctx context.Context, id string) (*schema.User, error)

	// Close releases the cache
	Close()
}

type userCache struct {
	store store.Store
	cache *ristretto.Cache[string, *schema.User]
	ttl   time.Duration
}

// NewUserCache creates a user cache in front of the store.
// A zero TTL disables caching and every lookup hits the store.
func NewUserCache(st store.Store, ttl time.Duration) (UserCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *schema.User]{
		NumCounters: 100000,
		MaxCost:     10000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user cache: %w", err)
	}

	return &userCache{
		store: st,
		cache: c,
		ttl:   ttl,
	}, nil
}

// Get returns the user from memory or the store.
// Missing users are not cached so a newly provisioned account works immediately.
func (c *userCache) Get(ctx context.Context, id string) (*schema.User, error) {
	if c.ttl > 0 {
		if user, ok := c.cache.Get(id); ok {
			return user, nil
		}
	}

	user, err := c.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if c.ttl > 0 {
		c.cache.SetWithTTL(id, user, 1, c.ttl)
	}
	return user, nil
}

func (c *userCache) Close() {
	c.cache.Close()
}
