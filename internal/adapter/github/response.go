package github

import (
	"time"

	"github.com/calmcanvas/portfolio-stats/internal/app"
)

type profileResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

func (r profileResponse) ToProfile() app.Profile {
	return app.Profile{
		Login:       r.Login,
		Name:        r.Name,
		AvatarURL:   r.AvatarURL,
		Bio:         r.Bio,
		PublicRepos: r.PublicRepos,
		Followers:   r.Followers,
		Following:   r.Following,
	}
}

type reposResponse []struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, el := range r {
		repos = append(repos, app.Repository{
			Name:     el.Name,
			Stars:    el.StargazersCount,
			Forks:    el.ForksCount,
			Language: el.Language,
		})
	}

	return repos
}

type graphQLResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							ContributionCount int    `json:"contributionCount"`
							Date              string `json:"date"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

func (r graphQLResponse) ToCalendar() app.ContributionCalendar {
	if r.Data.User == nil {
		return app.ContributionCalendar{}
	}

	calendar := r.Data.User.ContributionsCollection.ContributionCalendar
	days := make(map[time.Time]int)
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			d, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				continue
			}
			days[d] = day.ContributionCount
		}
	}

	return app.ContributionCalendar{
		Days:          days,
		ReportedTotal: calendar.TotalContributions,
	}
}

type contributionsAPIResponse struct {
	Total         map[string]int `json:"total"`
	Contributions []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	} `json:"contributions"`
}

func (r contributionsAPIResponse) ToCalendar(now time.Time) app.ContributionCalendar {
	total := r.Total["lastYear"]
	if total == 0 {
		total = r.Total[now.Format("2006")]
	}

	days := make(map[time.Time]int, len(r.Contributions))
	for _, day := range r.Contributions {
		d, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		days[d] = day.Count
	}

	return app.ContributionCalendar{
		Days:          days,
		ReportedTotal: total,
	}
}
