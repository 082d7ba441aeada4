package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("credentials not cached")

// Credentials is an optional redis-backed cache of email → password hash,
// letting login reject bad passwords without a database round trip. With no
// client configured every lookup is a miss and writes are no-ops.
type Credentials struct {
	client *redis.Client
}

// New returns a cache backed by the redis at addr, or a disabled cache when
// addr is empty.
func New(addr string) *Credentials {
	if addr == "" {
		return &Credentials{}
	}
	return &Credentials{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Credentials) Enabled() bool {
	return c != nil && c.client != nil
}

func userKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}

// Store caches the bcrypt hash for email. Errors are returned for logging but
// are never fatal to the request.
func (c *Credentials) Store(ctx context.Context, email, passwordHash string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.HSet(ctx, userKey(email), map[string]interface{}{
		"email":    email,
		"password": passwordHash,
	}).Err()
}

// Lookup returns the cached hash for email, or ErrCacheMiss.
func (c *Credentials) Lookup(ctx context.Context, email string) (string, error) {
	if !c.Enabled() {
		return "", ErrCacheMiss
	}
	result, err := c.client.HGetAll(ctx, userKey(email)).Result()
	if err != nil {
		return "", err
	}
	hash, ok := result["password"]
	if !ok || hash == "" {
		return "", ErrCacheMiss
	}
	return hash, nil
}

// Invalidate drops the cached credentials for email.
func (c *Credentials) Invalidate(ctx context.Context, email string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, userKey(email)).Err()
}
