package leetcode

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

const userAgent = "calm-canvas-portfolio"

// Client returns details about a leetcode user via a public wrapper API.
// This struct is an adapter for app.LeetCodeClient.
type Client struct {
	doer    HTTPDoer
	address string
	timeout time.Duration

	responseMaxSize int
}

var _ app.LeetCodeClient = &Client{}

// NewClient creates new leetcode client.
func NewClient(doer HTTPDoer, address string, timeout time.Duration) *Client {
	return &Client{
		doer:    doer,
		address: address,
		timeout: timeout,

		responseMaxSize: 1024 * 1024,
	}
}

// Profile returns the user's public profile by username.
// A non-success upstream status maps to app.ProfileNotFoundError.
func (c *Client) Profile(ctx context.Context, username string) (app.LeetCodeProfile, error) {
	if username == "" {
		return app.LeetCodeProfile{}, app.InvalidRequestError("username cannot be empty")
	}

	body, code, err := c.get(ctx, url.PathEscape(username))
	if err != nil {
		if code/100 > 3 {
			return app.LeetCodeProfile{}, app.ProfileNotFoundError(fmt.Sprintf("leetcode user not found: %s", username))
		}
		return app.LeetCodeProfile{}, err
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.LeetCodeProfile{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToProfile(), nil
}

// Solved returns the user's solved-problem counts per difficulty.
func (c *Client) Solved(ctx context.Context, username string) (app.SolvedStats, error) {
	if username == "" {
		return app.SolvedStats{}, app.InvalidRequestError("username cannot be empty")
	}

	body, _, err := c.get(ctx, url.PathEscape(username)+"/solved")
	if err != nil {
		return app.SolvedStats{}, err
	}

	var resp solvedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.SolvedStats{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToSolvedStats(), nil
}

// Contest returns the user's contest standing.
func (c *Client) Contest(ctx context.Context, username string) (app.ContestStats, error) {
	if username == "" {
		return app.ContestStats{}, app.InvalidRequestError("username cannot be empty")
	}

	body, _, err := c.get(ctx, url.PathEscape(username)+"/contest")
	if err != nil {
		return app.ContestStats{}, err
	}

	var resp contestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.ContestStats{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToContestStats(), nil
}

// Calendar returns the user's submission calendar.
func (c *Client) Calendar(ctx context.Context, username string) (app.SubmissionCalendar, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	body, _, err := c.get(ctx, url.PathEscape(username)+"/calendar")
	if err != nil {
		return nil, err
	}

	var resp calendarResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	return app.ParseSubmissionCalendar(resp.SubmissionCalendar), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	u, err := url.Parse(c.address + "/" + path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "invalid url")
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("User-Agent", userAgent)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, 0, errors.Wrap(err, "doing http request")
	}
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 > 3 {
		return nil, resp.StatusCode, errors.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "reading http response body")
	}

	return b, resp.StatusCode, nil
}
