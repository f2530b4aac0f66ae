package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/calmcanvas/portfolio-stats/internal/app"
)

// Service can return aggregated stats for portfolio cards
//go:generate mockgen -destination mock/service.go -package mock github.com/calmcanvas/portfolio-stats/internal/api/http Service
type Service interface {
	GithubStats(ctx context.Context, username string) (app.GithubStats, error)
	LeetCodeStats(ctx context.Context, username string) (app.LeetCodeStats, error)
}

type githubStatsResponse struct {
	Username      string              `json:"username"`
	Name          string              `json:"name"`
	Avatar        string              `json:"avatar"`
	Bio           string              `json:"bio"`
	Repositories  int                 `json:"repositories"`
	Followers     int                 `json:"followers"`
	Following     int                 `json:"following"`
	Stars         int                 `json:"stars"`
	Forks         int                 `json:"forks"`
	Contributions int                 `json:"contributions"`
	TopLanguages  []app.LanguageCount `json:"topLanguages"`
	Streak        int                 `json:"streak"`
}

func newGithubStatsResponse(stats app.GithubStats) githubStatsResponse {
	languages := stats.TopLanguages
	if languages == nil {
		languages = []app.LanguageCount{}
	}

	return githubStatsResponse{
		Username:      stats.Username,
		Name:          stats.Name,
		Avatar:        stats.Avatar,
		Bio:           stats.Bio,
		Repositories:  stats.Repositories,
		Followers:     stats.Followers,
		Following:     stats.Following,
		Stars:         stats.Stars,
		Forks:         stats.Forks,
		Contributions: stats.Contributions,
		TopLanguages:  languages,
		Streak:        stats.Streak,
	}
}

type leetcodeStatsResponse struct {
	Username         string      `json:"username"`
	Name             string      `json:"name"`
	Avatar           string      `json:"avatar"`
	Ranking          int         `json:"ranking"`
	Reputation       int         `json:"reputation"`
	TotalSolved      int         `json:"totalSolved"`
	EasySolved       int         `json:"easySolved"`
	MediumSolved     int         `json:"mediumSolved"`
	HardSolved       int         `json:"hardSolved"`
	TotalEasy        int         `json:"totalEasy"`
	TotalMedium      int         `json:"totalMedium"`
	TotalHard        int         `json:"totalHard"`
	AcceptanceRate   float64     `json:"acceptanceRate"`
	ContestRating    int         `json:"contestRating"`
	ContestRanking   int         `json:"contestRanking"`
	ContestsAttended int         `json:"contestsAttended"`
	TotalActiveDays  int         `json:"totalActiveDays"`
	Streak           int         `json:"streak"`
	Badges           []app.Badge `json:"badges"`
}

func newLeetCodeStatsResponse(stats app.LeetCodeStats) leetcodeStatsResponse {
	badges := stats.Badges
	if badges == nil {
		badges = []app.Badge{}
	}

	return leetcodeStatsResponse{
		Username:         stats.Username,
		Name:             stats.Name,
		Avatar:           stats.Avatar,
		Ranking:          stats.Ranking,
		Reputation:       stats.Reputation,
		TotalSolved:      stats.Solved.TotalSolved,
		EasySolved:       stats.Solved.EasySolved,
		MediumSolved:     stats.Solved.MediumSolved,
		HardSolved:       stats.Solved.HardSolved,
		TotalEasy:        stats.Solved.TotalEasy,
		TotalMedium:      stats.Solved.TotalMedium,
		TotalHard:        stats.Solved.TotalHard,
		AcceptanceRate:   stats.AcceptanceRate,
		ContestRating:    stats.ContestRating,
		ContestRanking:   stats.ContestRanking,
		ContestsAttended: stats.ContestsAttended,
		TotalActiveDays:  stats.TotalActiveDays,
		Streak:           stats.Streak,
		Badges:           badges,
	}
}

type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

// NewGithubStatsHandler creates handlerfunc returning aggregated github stats.
func NewGithubStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		stats, err := service.GithubStats(r.Context(), username)
		if err != nil {
			writeServiceError(w, l, err, errorResponse{
				Error:   "Failed to fetch GitHub data",
				Message: errorMessage(err),
			})
			return
		}

		writeJSON(w, http.StatusOK, newGithubStatsResponse(stats))
	}
}

// NewLeetCodeStatsHandler creates handlerfunc returning aggregated leetcode stats.
func NewLeetCodeStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		stats, err := service.LeetCodeStats(r.Context(), username)
		if err != nil {
			writeServiceError(w, l, err, errorResponse{
				Error:    "Failed to fetch LeetCode data",
				Message:  errorMessage(err),
				Username: username,
			})
			return
		}

		writeJSON(w, http.StatusOK, newLeetCodeStatsResponse(stats))
	}
}

// NewHealthHandler creates handlerfunc returning a liveness marker.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status    string `json:"status"`
			Timestamp string `json:"timestamp"`
		}{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func writeServiceError(w http.ResponseWriter, l logrus.FieldLogger, err error, resp errorResponse) {
	status := http.StatusInternalServerError
	switch {
	case app.IsInvalidRequestError(err):
		status = http.StatusBadRequest
	case app.IsProfileNotFoundError(err):
		status = http.StatusNotFound
	}

	l.WithError(err).WithField("status", status).Warn("request failed")
	writeJSON(w, status, resp)
}

// errorMessage hides internals of unexpected errors from clients.
func errorMessage(err error) string {
	if app.IsInvalidRequestError(err) || app.IsProfileNotFoundError(err) {
		return err.Error()
	}

	return "internal error"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(data)
}
