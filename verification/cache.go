package verification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a verified token is honoured again without
// asking Turnstile
const DefaultCacheTTL = 5 * time.Minute

// TokenCache remembers tokens that already passed siteverify. Turnstile
// rejects a token the second time it is validated, so a client exporting a
// PDF and then a ZIP with one token is answered from here.
type TokenCache struct {
	store store.Cache
}

// NewTokenCache returns a cache whose entries expire after ttl. Expiry runs
// until ctx is cancelled.
func NewTokenCache(ctx context.Context, ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &TokenCache{store: store.NewFIFO(ctx, ttl)}
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Seen reports whether token verified recently
func (c *TokenCache) Seen(r *http.Request, token string) bool {
	v, ok, err := c.store.Load(tokenKey(token), r)
	if err != nil {
		zap.S().Warnw("token cache load failed", "error", err)
		return false
	}
	verified, _ := v.(bool)
	return ok && verified
}

// Remember records token as verified
func (c *TokenCache) Remember(r *http.Request, token string) {
	if err := c.store.Store(tokenKey(token), true, r); err != nil {
		zap.S().Warnw("token cache store failed", "error", err)
	}
}

// Forget drops token from the cache
func (c *TokenCache) Forget(r *http.Request, token string) {
	if err := c.store.Delete(tokenKey(token), r); err != nil {
		zap.S().Warnw("token cache delete failed", "error", err)
	}
}
