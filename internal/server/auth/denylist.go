package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
)

// Denylist remembers revoked token ids (jti) for at least one token
// lifetime. It is process-local: revocations are lost on restart and are
// not shared between replicas.
type Denylist struct {
	cache *bigcache.BigCache
}

// NewDenylist keeps entries for ttl, which should be the token validity.
func NewDenylist(ctx context.Context, ttl time.Duration) (*Denylist, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Shards = 64
	cfg.MaxEntriesInWindow = 10_000
	cfg.MaxEntrySize = 64
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating denylist cache: %w", err)
	}
	return &Denylist{cache: cache}, nil
}

// Revoke marks the token id as no longer acceptable.
func (d *Denylist) Revoke(tokenID string) error {
	return d.cache.Set(tokenID, []byte{1})
}

// IsRevoked reports whether the token id was revoked.
func (d *Denylist) IsRevoked(tokenID string) bool {
	buf, err := d.cache.Get(tokenID)
	return err == nil && len(buf) > 0 && buf[0] == 1
}

func (d *Denylist) Close() error {
	return d.cache.Close()
}
