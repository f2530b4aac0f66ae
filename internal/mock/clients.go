package mock

import (
	"context"

	"github.com/calmcanvas/portfolio-stats/internal/app"
)

// GithubClient mocks app.GithubClient
type GithubClient struct {
	ProfileFunc      func(ctx context.Context, username string) (app.Profile, error)
	RepositoriesFunc func(ctx context.Context, username string) ([]app.Repository, error)
}

// Profile returns the user's profile by username
func (m *GithubClient) Profile(ctx context.Context, username string) (app.Profile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, username)
	}

	return app.Profile{}, nil
}

// Repositories returns the user's repositories
func (m *GithubClient) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	if m.RepositoriesFunc != nil {
		return m.RepositoriesFunc(ctx, username)
	}

	return []app.Repository{}, nil
}

// ContributionSource mocks app.ContributionSource
type ContributionSource struct {
	SourceName        string
	ContributionsFunc func(ctx context.Context, username string) (app.ContributionCalendar, error)
}

// Name returns the source name
func (m *ContributionSource) Name() string {
	if m.SourceName != "" {
		return m.SourceName
	}

	return "mock"
}

// Contributions returns fake contribution calendar data
func (m *ContributionSource) Contributions(ctx context.Context, username string) (app.ContributionCalendar, error) {
	if m.ContributionsFunc != nil {
		return m.ContributionsFunc(ctx, username)
	}

	return app.ContributionCalendar{}, nil
}

// LeetCodeClient mocks app.LeetCodeClient
type LeetCodeClient struct {
	ProfileFunc  func(ctx context.Context, username string) (app.LeetCodeProfile, error)
	SolvedFunc   func(ctx context.Context, username string) (app.SolvedStats, error)
	ContestFunc  func(ctx context.Context, username string) (app.ContestStats, error)
	CalendarFunc func(ctx context.Context, username string) (app.SubmissionCalendar, error)
}

// Profile returns the user's profile by username
func (m *LeetCodeClient) Profile(ctx context.Context, username string) (app.LeetCodeProfile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, username)
	}

	return app.LeetCodeProfile{}, nil
}

// Solved returns the user's solved-problem counts
func (m *LeetCodeClient) Solved(ctx context.Context, username string) (app.SolvedStats, error) {
	if m.SolvedFunc != nil {
		return m.SolvedFunc(ctx, username)
	}

	return app.SolvedStats{}, nil
}

// Contest returns the user's contest standing
func (m *LeetCodeClient) Contest(ctx context.Context, username string) (app.ContestStats, error) {
	if m.ContestFunc != nil {
		return m.ContestFunc(ctx, username)
	}

	return app.ContestStats{}, nil
}

// Calendar returns the user's submission calendar
func (m *LeetCodeClient) Calendar(ctx context.Context, username string) (app.SubmissionCalendar, error) {
	if m.CalendarFunc != nil {
		return m.CalendarFunc(ctx, username)
	}

	return app.SubmissionCalendar{}, nil
}
