package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/calmcanvas/portfolio-stats/internal/app"
)

// CachedClient wraps github client with caching layer.
// It caches upstream responses only; every request still assembles its
// result from scratch.
type CachedClient struct {
	client       app.GithubClient
	profileCache *lru.Cache
	reposCache   *lru.Cache
	ttl          time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	profileCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}

	return &CachedClient{
		client:       client,
		profileCache: profileCache,
		reposCache:   reposCache,
		ttl:          ttl,
	}, nil
}

// Profile returns the user's profile by username.
func (c *CachedClient) Profile(ctx context.Context, username string) (app.Profile, error) {
	val, ok := c.profileCache.Get(username)
	if ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	profile, err := c.client.Profile(ctx, username)
	if err != nil {
		return profile, err
	}

	c.profileCache.Add(username, profileCacheEntry{
		created: time.Now(),
		data:    profile,
	})

	return profile, nil
}

// Repositories returns the user's repositories, most recently updated first.
func (c *CachedClient) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	val, ok := c.reposCache.Get(username)
	if ok {
		entry := val.(reposCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	repos, err := c.client.Repositories(ctx, username)
	if err != nil {
		return repos, err
	}

	c.reposCache.Add(username, reposCacheEntry{
		created: time.Now(),
		data:    repos,
	})

	return repos, nil
}

type profileCacheEntry struct {
	created time.Time
	data    app.Profile
}

type reposCacheEntry struct {
	created time.Time
	data    []app.Repository
}
