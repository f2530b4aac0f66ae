package app

import "time"

// Profile entity. Fields come verbatim from one upstream profile call;
// anything the upstream omits stays at its zero value.
type Profile struct {
	Login       string
	Name        string
	AvatarURL   string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
}

// Repository entity
type Repository struct {
	Name     string
	Stars    int
	Forks    int
	Language string
}

// LanguageCount holds usage count for one language name.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ContributionStats holds metrics derived from a contribution calendar.
type ContributionStats struct {
	Total  int
	Streak int
}

// GithubStats is the assembled response data for one github user.
// Every field has a defined default so the struct is renderable even
// when auxiliary upstream calls failed.
type GithubStats struct {
	Username      string
	Name          string
	Avatar        string
	Bio           string
	Repositories  int
	Followers     int
	Following     int
	Stars         int
	Forks         int
	Contributions int
	Streak        int
	TopLanguages  []LanguageCount
}

// LeetCodeProfile entity
type LeetCodeProfile struct {
	Username       string
	Name           string
	Avatar         string
	Ranking        int
	Reputation     int
	AcceptanceRate float64
	Streak         int
	Badges         []Badge
	// Some wrapper deployments embed the submission calendar in the
	// profile payload. Used as fallback when the calendar call fails.
	SubmissionCalendar SubmissionCalendar
}

// Badge entity
type Badge struct {
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
}

// SolvedStats holds solved-problem counts per difficulty.
type SolvedStats struct {
	TotalSolved  int
	EasySolved   int
	MediumSolved int
	HardSolved   int
	TotalEasy    int
	TotalMedium  int
	TotalHard    int
}

// ContestStats entity
type ContestStats struct {
	Rating        float64
	GlobalRanking int
	Attended      int
}

// LeetCodeStats is the assembled response data for one leetcode user.
type LeetCodeStats struct {
	Username         string
	Name             string
	Avatar           string
	Ranking          int
	Reputation       int
	Solved           SolvedStats
	AcceptanceRate   float64
	ContestRating    int
	ContestRanking   int
	ContestsAttended int
	TotalActiveDays  int
	Streak           int
	Badges           []Badge
}

// ContributionCalendar maps days to contribution counts.
// ReportedTotal carries the upstream's own total when it provides one;
// zero means "not reported" and the day counts are summed instead.
type ContributionCalendar struct {
	Days          map[time.Time]int
	ReportedTotal int
}
