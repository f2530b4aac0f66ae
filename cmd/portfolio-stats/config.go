package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// RequestTimeout - timeout for handling one inbound request
	RequestTimeout time.Duration `default:"60s"`

	// AllowedOrigins - origins allowed by the CORS middleware
	AllowedOrigins []string `default:"http://localhost:5173,http://localhost:4173,http://localhost:8080"`

	// GithubAPIAddress - address for github rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubGraphQLAddress - address for github graphql api
	GithubGraphQLAddress string `default:"https://api.github.com/graphql"`

	// GithubToken - auth token for github apis (optional; without it the
	// graphql contribution source is disabled and the public fallback is used)
	GithubToken string `default:""`

	// GithubAPIRateLimit - max frequency for outbound github api calls per second
	GithubAPIRateLimit float64 `default:"5"`

	// ContributionsAPIAddress - address for the public contribution-calendar aggregator
	ContributionsAPIAddress string `default:"https://github-contributions-api.jogruber.de/v4"`

	// LeetCodeAPIAddress - address for the public leetcode wrapper api
	LeetCodeAPIAddress string `default:"https://alfa-leetcode-api.onrender.com"`

	// UpstreamTimeout - timeout for each outbound upstream call
	UpstreamTimeout time.Duration `default:"10s"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"1000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"5m"`
}
