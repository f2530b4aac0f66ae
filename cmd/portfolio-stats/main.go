package main

import (
	netHttp "net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/calmcanvas/portfolio-stats/internal/adapter/github"
	"github.com/calmcanvas/portfolio-stats/internal/adapter/leetcode"
	"github.com/calmcanvas/portfolio-stats/internal/api/http"
	"github.com/calmcanvas/portfolio-stats/internal/app"
	"github.com/calmcanvas/portfolio-stats/internal/limiter"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// .env is optional, real deployments configure via environment
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	githubDoer := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		githubDoer,
		conf.GithubAPIAddress,
		conf.GithubToken,
		conf.UpstreamTimeout,
	)
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	// The credentialed source joins only when a token is configured; the
	// public aggregator always serves as fallback.
	var contributionSources []app.ContributionSource
	if conf.GithubToken != "" {
		contributionSources = append(contributionSources, github.NewGraphQLContributionsClient(
			githubDoer,
			conf.GithubGraphQLAddress,
			conf.GithubToken,
			conf.UpstreamTimeout,
		))
	}
	contributionSources = append(contributionSources, github.NewContributionsAPIClient(
		httpClient,
		conf.ContributionsAPIAddress,
		conf.UpstreamTimeout,
	))

	leetcodeClient := leetcode.NewClient(
		httpClient,
		conf.LeetCodeAPIAddress,
		conf.UpstreamTimeout,
	)

	service := app.NewService(
		githubCachedClient,
		contributionSources,
		leetcodeClient,
		l.WithField("component", "service"),
	)

	mux := http.NewMux(service, conf.RequestTimeout, conf.AllowedOrigins, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
