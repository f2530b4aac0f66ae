package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmcanvas/portfolio-stats/internal/api/http/mock"
	"github.com/calmcanvas/portfolio-stats/internal/app"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Level = logrus.PanicLevel
	return l
}

// newRequestWithUsername builds a GET request carrying a chi route param.
func newRequestWithUsername(username string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/testurl", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestNewGithubStatsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		username   string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:     "valid response",
			username: "octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GithubStats(gomock.Any(), "octocat").
					Return(app.GithubStats{
						Username:      "octocat",
						Name:          "The Octocat",
						Avatar:        "https://example.com/a.png",
						Bio:           "hi",
						Repositories:  3,
						Followers:     10,
						Following:     2,
						Stars:         8,
						Forks:         4,
						Contributions: 42,
						Streak:        2,
						TopLanguages: []app.LanguageCount{
							{Name: "Go", Count: 2},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"username": "octocat",
				"name": "The Octocat",
				"avatar": "https://example.com/a.png",
				"bio": "hi",
				"repositories": 3,
				"followers": 10,
				"following": 2,
				"stars": 8,
				"forks": 4,
				"contributions": 42,
				"topLanguages": [{"name": "Go", "count": 2}],
				"streak": 2
			}`,
		},
		{
			name:     "degraded stats still serialize with defaults",
			username: "octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GithubStats(gomock.Any(), "octocat").
					Return(app.GithubStats{Username: "octocat"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"username": "octocat",
				"name": "",
				"avatar": "",
				"bio": "",
				"repositories": 0,
				"followers": 0,
				"following": 0,
				"stars": 0,
				"forks": 0,
				"contributions": 0,
				"topLanguages": [],
				"streak": 0
			}`,
		},
		{
			name:     "profile not found",
			username: "nosuchuser",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GithubStats(gomock.Any(), "nosuchuser").
					Return(app.GithubStats{}, errors.Wrap(
						app.ProfileNotFoundError("github user not found: nosuchuser"),
						"retrieving profile",
					))
			},
			wantStatus: http.StatusNotFound,
			wantBody: `{
				"error": "Failed to fetch GitHub data",
				"message": "github user not found: nosuchuser"
			}`,
		},
		{
			name:     "internal error details are hidden",
			username: "octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					GithubStats(gomock.Any(), "octocat").
					Return(app.GithubStats{}, errors.New("db on fire"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody: `{
				"error": "Failed to fetch GitHub data",
				"message": "internal error"
			}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			tt.setupMock(service)

			w := httptest.NewRecorder()
			NewGithubStatsHandler(service, testLogger())(w, newRequestWithUsername(tt.username))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestNewLeetCodeStatsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		username   string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:     "valid response",
			username: "neal",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					LeetCodeStats(gomock.Any(), "neal").
					Return(app.LeetCodeStats{
						Username:   "neal",
						Name:       "Neal",
						Avatar:     "https://example.com/n.png",
						Ranking:    1234,
						Reputation: 50,
						Solved: app.SolvedStats{
							TotalSolved:  300,
							EasySolved:   150,
							MediumSolved: 120,
							HardSolved:   30,
							TotalEasy:    800,
							TotalMedium:  1600,
							TotalHard:    700,
						},
						AcceptanceRate:   67.5,
						ContestRating:    1851,
						ContestRanking:   4321,
						ContestsAttended: 12,
						TotalActiveDays:  3,
						Streak:           7,
						Badges:           []app.Badge{{DisplayName: "Annual", Icon: "i.png"}},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"username": "neal",
				"name": "Neal",
				"avatar": "https://example.com/n.png",
				"ranking": 1234,
				"reputation": 50,
				"totalSolved": 300,
				"easySolved": 150,
				"mediumSolved": 120,
				"hardSolved": 30,
				"totalEasy": 800,
				"totalMedium": 1600,
				"totalHard": 700,
				"acceptanceRate": 67.5,
				"contestRating": 1851,
				"contestRanking": 4321,
				"contestsAttended": 12,
				"totalActiveDays": 3,
				"streak": 7,
				"badges": [{"displayName": "Annual", "icon": "i.png"}]
			}`,
		},
		{
			name:     "profile not found includes username",
			username: "nosuchuser",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					LeetCodeStats(gomock.Any(), "nosuchuser").
					Return(app.LeetCodeStats{}, errors.Wrap(
						app.ProfileNotFoundError("leetcode user not found: nosuchuser"),
						"retrieving profile",
					))
			},
			wantStatus: http.StatusNotFound,
			wantBody: `{
				"error": "Failed to fetch LeetCode data",
				"message": "leetcode user not found: nosuchuser",
				"username": "nosuchuser"
			}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			tt.setupMock(service)

			w := httptest.NewRecorder()
			NewLeetCodeStatsHandler(service, testLogger())(w, newRequestWithUsername(tt.username))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestNewHealthHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewHealthHandler()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}
