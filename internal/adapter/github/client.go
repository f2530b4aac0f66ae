package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/calmcanvas/portfolio-stats/internal/app"
	"github.com/pkg/errors"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// userAgent identifies this client to upstream APIs.
const userAgent = "calm-canvas-portfolio"

// Client returns details about a github user.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	timeout   time.Duration

	profileResponseMaxSize int
	reposResponseMaxSize   int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional, rate limit is lower without it.
func NewClient(doer HTTPDoer, address string, authToken string, timeout time.Duration) *Client {
	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		timeout:   timeout,

		profileResponseMaxSize: 1024 * 1024,
		reposResponseMaxSize:   1024 * 1024 * 10,
	}
}

// Profile returns the user's profile by username.
// A non-success upstream status maps to app.ProfileNotFoundError: the
// upstream doesn't let us tell a missing user from an outage.
func (c *Client) Profile(ctx context.Context, username string) (app.Profile, error) {
	if username == "" {
		return app.Profile{}, app.InvalidRequestError("username cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(username))
	if err != nil {
		return app.Profile{}, errors.Wrap(err, "invalid url")
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.Profile{}, errors.Wrap(err, "creating http request")
	}

	body, code, err := c.makeRequest(ctx, httpReq, c.profileResponseMaxSize)
	if err != nil {
		if code/100 > 3 {
			return app.Profile{}, app.ProfileNotFoundError(fmt.Sprintf("github user not found: %s", username))
		}
		return app.Profile{}, err
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToProfile(), nil
}

// Repositories returns the user's repositories, most recently updated first.
func (c *Client) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(username) + "/repos")
	if err != nil {
		return nil, errors.Wrap(err, "invalid url")
	}

	v := make(url.Values)
	v.Set("per_page", "100")
	v.Set("sort", "updated")
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating http request")
	}

	body, _, err := c.makeRequest(ctx, httpReq, c.reposResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToRepositories(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	return doRequest(ctx, c.doer, req, c.timeout, maxBytes)
}

// doRequest executes the request bounded by its own timeout and returns the
// response body and status code. The code is returned also on non-success
// statuses so that callers can map them to domain errors.
func doRequest(ctx context.Context, doer HTTPDoer, req *http.Request, timeout time.Duration, maxBytes int) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, errors.Wrap(err, "doing http request")
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode/100 > 3 {
		return nil, resp.StatusCode, errors.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "reading http response body")
	}

	return b, resp.StatusCode, nil
}
