package identity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenCache_ReusesFreshToken(t *testing.T) {
	var calls int32
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		atomic.AddInt32(&calls, 1)
		return &oauth2.Token{AccessToken: "tok-1", Expiry: time.Now().Add(time.Hour)}, nil
	}, nil)

	for i := 0; i < 3; i++ {
		tok, err := cache.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenCache_RefreshesWithinBuffer(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var calls int32
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		n := atomic.AddInt32(&calls, 1)
		return &oauth2.Token{AccessToken: []string{"", "first", "second"}[n], Expiry: now.Add(10 * time.Minute)}, nil
	}, nil)
	cache.now = func() time.Time { return now }

	tok, err := cache.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", tok)

	// six minutes later the token is inside the five minute buffer
	now = now.Add(6 * time.Minute)
	tok, err = cache.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestTokenCache_ConcurrentCallersShareRefresh(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &oauth2.Token{AccessToken: "shared", Expiry: time.Now().Add(time.Hour)}, nil
	}, nil)

	var wg sync.WaitGroup
	results := make([]string, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := cache.AccessToken(context.Background())
			if err == nil {
				results[i] = tok
			}
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestTokenCache_FallsBackToJWTExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	raw := signedJWT(t, exp)

	var calls int32
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		atomic.AddInt32(&calls, 1)
		return &oauth2.Token{AccessToken: raw}, nil
	}, nil)

	_, err := cache.AccessToken(context.Background())
	require.NoError(t, err)
	_, err = cache.AccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, cache.expiry.Equal(exp), "expiry %v, want %v", cache.expiry, exp)
}

func TestTokenCache_OpaqueTokenWithoutExpiryIsNotCached(t *testing.T) {
	var calls int32
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		atomic.AddInt32(&calls, 1)
		return &oauth2.Token{AccessToken: "opaque"}, nil
	}, nil)

	for i := 0; i < 2; i++ {
		tok, err := cache.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "opaque", tok)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTokenCache_FetchError(t *testing.T) {
	cache := newTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		return nil, errors.New("invalid_client")
	}, nil)

	_, err := cache.AccessToken(context.Background())
	assert.ErrorContains(t, err, "invalid_client")
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set(jwt.ExpirationKey, exp))
	require.NoError(t, tok.Set(jwt.AudienceKey, "https://tenant.example.com/api/v2/"))
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(t, err)
	return string(signed)
}
