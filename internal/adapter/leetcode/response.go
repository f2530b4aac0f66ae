package leetcode

import (
	"encoding/json"

	"github.com/calmcanvas/portfolio-stats/internal/app"
)

// Upstream payloads are loosely shaped: any field may be missing depending
// on the wrapper deployment. Absent fields keep their zero values.

type profileResponse struct {
	Username           string          `json:"username"`
	Name               string          `json:"name"`
	Avatar             string          `json:"avatar"`
	Ranking            int             `json:"ranking"`
	Reputation         int             `json:"reputation"`
	AcceptanceRate     float64         `json:"acceptanceRate"`
	Streak             int             `json:"streak"`
	Badges             []badgePayload  `json:"badges"`
	SubmissionCalendar json.RawMessage `json:"submissionCalendar"`
}

type badgePayload struct {
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
}

func (r profileResponse) ToProfile() app.LeetCodeProfile {
	badges := make([]app.Badge, 0, len(r.Badges))
	for _, b := range r.Badges {
		badges = append(badges, app.Badge{
			DisplayName: b.DisplayName,
			Icon:        b.Icon,
		})
	}

	return app.LeetCodeProfile{
		Username:           r.Username,
		Name:               r.Name,
		Avatar:             r.Avatar,
		Ranking:            r.Ranking,
		Reputation:         r.Reputation,
		AcceptanceRate:     r.AcceptanceRate,
		Streak:             r.Streak,
		Badges:             badges,
		SubmissionCalendar: app.ParseSubmissionCalendar(r.SubmissionCalendar),
	}
}

type solvedResponse struct {
	SolvedProblem int `json:"solvedProblem"`
	EasySolved    int `json:"easySolved"`
	MediumSolved  int `json:"mediumSolved"`
	HardSolved    int `json:"hardSolved"`
	TotalEasy     int `json:"totalEasy"`
	TotalMedium   int `json:"totalMedium"`
	TotalHard     int `json:"totalHard"`
}

func (r solvedResponse) ToSolvedStats() app.SolvedStats {
	return app.SolvedStats{
		TotalSolved:  r.SolvedProblem,
		EasySolved:   r.EasySolved,
		MediumSolved: r.MediumSolved,
		HardSolved:   r.HardSolved,
		TotalEasy:    r.TotalEasy,
		TotalMedium:  r.TotalMedium,
		TotalHard:    r.TotalHard,
	}
}

type contestResponse struct {
	ContestRating        float64 `json:"contestRating"`
	ContestGlobalRanking int     `json:"contestGlobalRanking"`
	ContestAttend        int     `json:"contestAttend"`
}

func (r contestResponse) ToContestStats() app.ContestStats {
	return app.ContestStats{
		Rating:        r.ContestRating,
		GlobalRanking: r.ContestGlobalRanking,
		Attended:      r.ContestAttend,
	}
}

type calendarResponse struct {
	SubmissionCalendar json.RawMessage `json:"submissionCalendar"`
}
