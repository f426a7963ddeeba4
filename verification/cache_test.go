package verification

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cache := NewTokenCache(ctx, time.Minute)
	r := httptest.NewRequest("POST", VerifyPath, nil)

	assert.False(t, cache.Seen(r, "tok"))
	cache.Remember(r, "tok")
	assert.True(t, cache.Seen(r, "tok"))
	assert.False(t, cache.Seen(r, "other"))

	cache.Forget(r, "tok")
	assert.False(t, cache.Seen(r, "tok"))
}

func TestTokenKeyHidesToken(t *testing.T) {
	key := tokenKey("secret-token")
	assert.Len(t, key, 64)
	assert.NotContains(t, key, "secret-token")
}
