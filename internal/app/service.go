package app

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GithubClient returns details about a github user's profile and repositories
type GithubClient interface {
	Profile(ctx context.Context, username string) (Profile, error)
	Repositories(ctx context.Context, username string) ([]Repository, error)
}

// ContributionSource can produce a contribution calendar for a user.
// Sources are tried in order until one yields a non-empty result.
type ContributionSource interface {
	Name() string
	Contributions(ctx context.Context, username string) (ContributionCalendar, error)
}

// LeetCodeClient returns details about a leetcode user
type LeetCodeClient interface {
	Profile(ctx context.Context, username string) (LeetCodeProfile, error)
	Solved(ctx context.Context, username string) (SolvedStats, error)
	Contest(ctx context.Context, username string) (ContestStats, error)
	Calendar(ctx context.Context, username string) (SubmissionCalendar, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	github        GithubClient
	contributions []ContributionSource
	leetcode      LeetCodeClient
	l             logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(
	github GithubClient,
	contributions []ContributionSource,
	leetcode LeetCodeClient,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		github:        github,
		contributions: contributions,
		leetcode:      leetcode,
		l:             l,
	}
}

// GithubStats returns aggregated stats for given github username.
//
// The profile lookup is fatal: without it there is nothing to assemble.
// Repositories and contribution data are fetched concurrently afterwards;
// either of them failing degrades the corresponding fields to defaults
// without failing the request.
func (s *Service) GithubStats(ctx context.Context, username string) (GithubStats, error) {
	if username == "" {
		return GithubStats{}, InvalidRequestError("username cannot be empty")
	}

	profile, err := s.github.Profile(ctx, username)
	if err != nil {
		return GithubStats{}, errors.Wrapf(err, "retrieving profile for %q", username)
	}

	type reposResult struct {
		repos []Repository
		err   error
	}
	reposCh := make(chan reposResult, 1)
	go func() {
		repos, err := s.github.Repositories(ctx, username)
		reposCh <- reposResult{repos: repos, err: err}
	}()

	contribCh := make(chan ContributionStats, 1)
	go func() {
		contribCh <- s.contributionStats(ctx, username)
	}()

	rr := <-reposCh
	if rr.err != nil {
		s.l.WithError(rr.err).WithField("username", username).
			Warn("retrieving repositories failed, falling back to defaults")
		rr.repos = nil
	}
	contrib := <-contribCh

	return assembleGithubStats(profile, rr.repos, contrib), nil
}

// contributionStats resolves contribution metrics by trying the configured
// sources in order. A zero total is indistinguishable from a failed or
// unauthenticated call, so it always causes the next source to be consulted,
// and the later source's result is preferred.
func (s *Service) contributionStats(ctx context.Context, username string) ContributionStats {
	var stats ContributionStats
	for _, src := range s.contributions {
		cal, err := src.Contributions(ctx, username)
		if err != nil {
			s.l.WithError(err).
				WithFields(logrus.Fields{"source": src.Name(), "username": username}).
				Warn("contribution source failed")
			continue
		}

		stats = cal.Stats(time.Now())
		if stats.Total > 0 {
			return stats
		}
	}

	return stats
}

// LeetCodeStats returns aggregated stats for given leetcode username.
//
// The profile lookup is fatal. Solved counts, contest data and the
// submission calendar are fetched concurrently; each failure is absorbed
// into zero-value fields.
func (s *Service) LeetCodeStats(ctx context.Context, username string) (LeetCodeStats, error) {
	if username == "" {
		return LeetCodeStats{}, InvalidRequestError("username cannot be empty")
	}

	profile, err := s.leetcode.Profile(ctx, username)
	if err != nil {
		return LeetCodeStats{}, errors.Wrapf(err, "retrieving profile for %q", username)
	}

	type solvedResult struct {
		stats SolvedStats
		err   error
	}
	type contestResult struct {
		stats ContestStats
		err   error
	}
	type calendarResult struct {
		cal SubmissionCalendar
		err error
	}

	solvedCh := make(chan solvedResult, 1)
	go func() {
		stats, err := s.leetcode.Solved(ctx, username)
		solvedCh <- solvedResult{stats: stats, err: err}
	}()
	contestCh := make(chan contestResult, 1)
	go func() {
		stats, err := s.leetcode.Contest(ctx, username)
		contestCh <- contestResult{stats: stats, err: err}
	}()
	calendarCh := make(chan calendarResult, 1)
	go func() {
		cal, err := s.leetcode.Calendar(ctx, username)
		calendarCh <- calendarResult{cal: cal, err: err}
	}()

	sr := <-solvedCh
	if sr.err != nil {
		s.l.WithError(sr.err).WithField("username", username).
			Warn("retrieving solved stats failed, falling back to defaults")
		sr.stats = SolvedStats{}
	}
	cr := <-contestCh
	if cr.err != nil {
		s.l.WithError(cr.err).WithField("username", username).
			Warn("retrieving contest stats failed, falling back to defaults")
		cr.stats = ContestStats{}
	}
	clr := <-calendarCh
	calendar := clr.cal
	if clr.err != nil || calendar == nil {
		if clr.err != nil {
			s.l.WithError(clr.err).WithField("username", username).
				Warn("retrieving submission calendar failed, falling back to profile calendar")
		}
		calendar = profile.SubmissionCalendar
	}

	return assembleLeetCodeStats(username, profile, sr.stats, cr.stats, calendar), nil
}

func assembleGithubStats(profile Profile, repos []Repository, contrib ContributionStats) GithubStats {
	var stars, forks int
	for _, r := range repos {
		stars += r.Stars
		forks += r.Forks
	}

	return GithubStats{
		Username:      profile.Login,
		Name:          profile.Name,
		Avatar:        profile.AvatarURL,
		Bio:           profile.Bio,
		Repositories:  profile.PublicRepos,
		Followers:     profile.Followers,
		Following:     profile.Following,
		Stars:         stars,
		Forks:         forks,
		Contributions: contrib.Total,
		Streak:        contrib.Streak,
		TopLanguages:  topLanguages(repos, 5),
	}
}

// topLanguages counts repositories per language and returns the `limit` most
// used ones. Ties keep the order in which languages were first encountered.
func topLanguages(repos []Repository, limit int) []LanguageCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, ok := counts[r.Language]; !ok {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	langs := make([]LanguageCount, 0, len(order))
	for _, name := range order {
		langs = append(langs, LanguageCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Count > langs[j].Count
	})

	if len(langs) > limit {
		langs = langs[:limit]
	}

	return langs
}

func assembleLeetCodeStats(
	username string,
	profile LeetCodeProfile,
	solved SolvedStats,
	contest ContestStats,
	calendar SubmissionCalendar,
) LeetCodeStats {
	stats := LeetCodeStats{
		Username:         profile.Username,
		Name:             profile.Name,
		Avatar:           profile.Avatar,
		Ranking:          profile.Ranking,
		Reputation:       profile.Reputation,
		Solved:           solved,
		AcceptanceRate:   profile.AcceptanceRate,
		ContestRating:    int(math.Round(contest.Rating)),
		ContestRanking:   contest.GlobalRanking,
		ContestsAttended: contest.Attended,
		TotalActiveDays:  calendar.ActiveDays(),
		Streak:           profile.Streak,
		Badges:           profile.Badges,
	}
	if stats.Username == "" {
		stats.Username = username
	}
	if stats.Name == "" {
		stats.Name = username
	}
	if stats.Badges == nil {
		stats.Badges = []Badge{}
	}

	return stats
}
