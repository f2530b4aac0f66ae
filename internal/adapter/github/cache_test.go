package github

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmcanvas/portfolio-stats/internal/app"
	"github.com/calmcanvas/portfolio-stats/internal/mock"
)

func TestNewCachedClientInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewCachedClient(&mock.GithubClient{}, 0, time.Minute)
	require.Error(t, err)
}

func TestCachedClientProfile(t *testing.T) {
	t.Parallel()

	var calls int
	client := &mock.GithubClient{
		ProfileFunc: func(ctx context.Context, username string) (app.Profile, error) {
			calls++
			return app.Profile{Login: username, Followers: calls}, nil
		},
	}

	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	first, err := cached.Profile(context.Background(), "octocat")
	require.NoError(t, err)
	second, err := cached.Profile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call should be served from cache")
	assert.Equal(t, first, second)

	_, err = cached.Profile(context.Background(), "otheruser")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "different username should not share cache entry")
}

func TestCachedClientProfileExpiredEntry(t *testing.T) {
	t.Parallel()

	var calls int
	client := &mock.GithubClient{
		ProfileFunc: func(ctx context.Context, username string) (app.Profile, error) {
			calls++
			return app.Profile{Login: username}, nil
		},
	}

	cached, err := NewCachedClient(client, 10, time.Millisecond)
	require.NoError(t, err)

	_, err = cached.Profile(context.Background(), "octocat")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = cached.Profile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entry should be refetched")
}

func TestCachedClientProfileError(t *testing.T) {
	t.Parallel()

	var calls int
	client := &mock.GithubClient{
		ProfileFunc: func(ctx context.Context, username string) (app.Profile, error) {
			calls++
			return app.Profile{}, errors.New("boom")
		},
	}

	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	_, err = cached.Profile(context.Background(), "octocat")
	require.Error(t, err)
	_, err = cached.Profile(context.Background(), "octocat")
	require.Error(t, err)

	assert.Equal(t, 2, calls, "errors must not be cached")
}

func TestCachedClientRepositories(t *testing.T) {
	t.Parallel()

	var calls int
	client := &mock.GithubClient{
		RepositoriesFunc: func(ctx context.Context, username string) ([]app.Repository, error) {
			calls++
			return []app.Repository{{Name: "hello", Stars: 1}}, nil
		},
	}

	cached, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	first, err := cached.Repositories(context.Background(), "octocat")
	require.NoError(t, err)
	second, err := cached.Repositories(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call should be served from cache")
	assert.Equal(t, first, second)
}
