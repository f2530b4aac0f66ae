package github

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/calmcanvas/portfolio-stats/internal/app"
	"github.com/pkg/errors"
)

const contributionsQuery = `
	query($username: String!) {
		user(login: $username) {
			contributionsCollection {
				contributionCalendar {
					totalContributions
					weeks {
						contributionDays {
							contributionCount
							date
						}
					}
				}
			}
		}
	}
`

// GraphQLContributionsClient produces a contribution calendar from github's
// GraphQL API. Requires an auth token.
// This struct is an adapter for app.ContributionSource.
type GraphQLContributionsClient struct {
	doer      HTTPDoer
	address   string
	authToken string
	timeout   time.Duration

	responseMaxSize int
}

var _ app.ContributionSource = &GraphQLContributionsClient{}

// NewGraphQLContributionsClient creates new GraphQLContributionsClient instance.
func NewGraphQLContributionsClient(doer HTTPDoer, address string, authToken string, timeout time.Duration) *GraphQLContributionsClient {
	return &GraphQLContributionsClient{
		doer:      doer,
		address:   address,
		authToken: authToken,
		timeout:   timeout,

		responseMaxSize: 1024 * 1024,
	}
}

// Name implements app.ContributionSource.
func (c *GraphQLContributionsClient) Name() string {
	return "github-graphql"
}

// Contributions returns the user's contribution calendar for the last year.
func (c *GraphQLContributionsClient) Contributions(ctx context.Context, username string) (app.ContributionCalendar, error) {
	if username == "" {
		return app.ContributionCalendar{}, app.InvalidRequestError("username cannot be empty")
	}

	payload := struct {
		Query     string `json:"query"`
		Variables struct {
			Username string `json:"username"`
		} `json:"variables"`
	}{Query: contributionsQuery}
	payload.Variables.Username = username

	body, err := json.Marshal(payload)
	if err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "marshalling query")
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.address, bytes.NewReader(body))
	if err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Authorization", "Bearer "+c.authToken)

	respBody, _, err := doRequest(ctx, c.doer, httpReq, c.timeout, c.responseMaxSize)
	if err != nil {
		return app.ContributionCalendar{}, err
	}

	var resp graphQLResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "unmarshalling response")
	}
	if resp.Data.User == nil {
		return app.ContributionCalendar{}, errors.Errorf("no user in graphql response for %q", username)
	}

	return resp.ToCalendar(), nil
}

// ContributionsAPIClient produces a contribution calendar from a public
// contributions aggregator, no credential needed. Used as fallback when the
// GraphQL source is unavailable or yields an empty calendar.
// This struct is an adapter for app.ContributionSource.
type ContributionsAPIClient struct {
	doer    HTTPDoer
	address string
	timeout time.Duration

	responseMaxSize int
}

var _ app.ContributionSource = &ContributionsAPIClient{}

// NewContributionsAPIClient creates new ContributionsAPIClient instance.
func NewContributionsAPIClient(doer HTTPDoer, address string, timeout time.Duration) *ContributionsAPIClient {
	return &ContributionsAPIClient{
		doer:    doer,
		address: address,
		timeout: timeout,

		responseMaxSize: 1024 * 1024,
	}
}

// Name implements app.ContributionSource.
func (c *ContributionsAPIClient) Name() string {
	return "contributions-api"
}

// Contributions returns the user's contribution calendar for the last year.
func (c *ContributionsAPIClient) Contributions(ctx context.Context, username string) (app.ContributionCalendar, error) {
	if username == "" {
		return app.ContributionCalendar{}, app.InvalidRequestError("username cannot be empty")
	}

	u, err := url.Parse(c.address + "/" + url.PathEscape(username))
	if err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "invalid url")
	}
	u.RawQuery = url.Values{"y": []string{"last"}}.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("User-Agent", userAgent)

	respBody, _, err := doRequest(ctx, c.doer, httpReq, c.timeout, c.responseMaxSize)
	if err != nil {
		return app.ContributionCalendar{}, err
	}

	var resp contributionsAPIResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return app.ContributionCalendar{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToCalendar(time.Now()), nil
}
