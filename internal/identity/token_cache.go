package identity

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

// refreshBuffer is how long before expiry a cached token is considered stale
const refreshBuffer = 5 * time.Minute

// TokenProvider hands out a bearer token for the management API
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

type tokenFetcher func(ctx context.Context) (*oauth2.Token, error)

// TokenCache holds one machine-to-machine access token and refreshes it lazily.
// Concurrent callers that find the token stale share a single refresh.
type TokenCache struct {
	expiry time.Time
	fetch  tokenFetcher
	now    func() time.Time
	logger *slog.Logger
	token  string
	group  singleflight.Group
	mu     sync.RWMutex
}

// ClientCredentials configures the client-credentials exchange
type ClientCredentials struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Audience     string
}

// NewTokenCache creates a cache backed by the OAuth2 client-credentials grant
// against https://<domain>/oauth/token
func NewTokenCache(creds ClientCredentials, logger *slog.Logger) *TokenCache {
	cfg := &clientcredentials.Config{
		ClientID:       creds.ClientID,
		ClientSecret:   creds.ClientSecret,
		TokenURL:       "https://" + strings.TrimSuffix(creds.Domain, "/") + "/oauth/token",
		EndpointParams: url.Values{"audience": {creds.Audience}},
		AuthStyle:      oauth2.AuthStyleInParams,
	}
	return newTokenCache(cfg.Token, logger)
}

func newTokenCache(fetch tokenFetcher, logger *slog.Logger) *TokenCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenCache{
		fetch:  fetch,
		now:    time.Now,
		logger: logger,
	}
}

// AccessToken returns the cached token, refreshing it first when it expires
// within the refresh buffer
func (c *TokenCache) AccessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, expiry := c.token, c.expiry
	c.mu.RUnlock()

	if token != "" && !c.needsRefresh(expiry) {
		return token, nil
	}

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		// another caller may have refreshed while we waited
		c.mu.RLock()
		token, expiry := c.token, c.expiry
		c.mu.RUnlock()
		if token != "" && !c.needsRefresh(expiry) {
			return token, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *TokenCache) needsRefresh(expiry time.Time) bool {
	return c.now().Add(refreshBuffer).After(expiry)
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	tok, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("failed to obtain management API token", "error", err)
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry, err = jwtExpiration(tok.AccessToken)
		if err != nil {
			// usable once, but never cached
			c.logger.Warn("access token has no known expiry", "error", err)
			expiry = c.now()
		}
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.expiry = expiry
	c.mu.Unlock()

	c.logger.Debug("management API token refreshed", "expires_at", expiry)
	return tok.AccessToken, nil
}

// jwtExpiration reads the exp claim without verifying the signature
func jwtExpiration(token string) (time.Time, error) {
	parsed, err := jwt.ParseInsecure([]byte(token), jwt.WithValidate(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse JWT: %w", err)
	}
	exp := parsed.Expiration()
	if exp.IsZero() {
		return time.Time{}, fmt.Errorf("JWT missing 'exp' claim")
	}
	return exp, nil
}
