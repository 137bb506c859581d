// Package client is a Go client for the back-office API.
//
// Reads issued for the same logical query (for example the quote list while
// a search box is being typed into) are sequenced: a response that arrives
// after a newer one for the same query has been applied is discarded with
// ErrSuperseded. Identical reads that are in flight at the same time share
// one HTTP round trip; cancelling one caller's context never fails the others.
// The client never retries and applies no timeout of its own beyond the
// caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"golang.org/x/sync/singleflight"
)

// ErrSuperseded is returned when a newer response for the same query was already applied.
var ErrSuperseded = errors.New("response superseded by a newer request")

// ErrConnectivity is returned when the API could not be reached.
var ErrConnectivity = apperrors.ErrConnectivity

// APIError is a non-2xx answer from the API. It unwraps to the matching
// sentinel (ErrValidation, ErrConflict, ...) so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return apperrors.ErrValidation
	case e.StatusCode == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return apperrors.ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return apperrors.ErrConflict
	case e.StatusCode == http.StatusServiceUnavailable:
		return apperrors.ErrConnectivity
	default:
		return nil
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Jar is replaced by
// the client's own cookie jar unless one is already set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client talks to the API over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	group   singleflight.Group

	mu      sync.Mutex
	issued  map[string]uint64
	applied map[string]uint64
}

// New creates a client for the API served at baseURL (for example
// "http://localhost:8080"). The session cookie is kept in an in-memory jar.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		issued:  make(map[string]uint64),
		applied: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

// ticket tags one request of a logical query.
type ticket struct {
	query string
	seq   uint64
}

func (c *Client) begin(query string) ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued[query]++
	return ticket{query: query, seq: c.issued[query]}
}

// apply records t as the latest applied response of its query, or reports
// ErrSuperseded when a newer one was applied first.
func (c *Client) apply(t ticket) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.seq < c.applied[t.query] {
		return ErrSuperseded
	}
	c.applied[t.query] = t.seq
	return nil
}

type response struct {
	status int
	body   []byte
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + "/api/v1" + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body []byte, contentType string) (*response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrConnectivity, method, endpoint, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrConnectivity, err)
	}
	return &response{status: res.StatusCode, body: data}, nil
}

func decode(res *response, out any) error {
	if res.status < 200 || res.status >= 300 {
		var envelope dto.ErrorResponse
		msg := http.StatusText(res.status)
		if err := json.Unmarshal(res.body, &envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: res.status, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get performs a sequenced, de-duplicated read of one logical query.
// The shared round trip ignores the cancellation of whichever caller started
// it; each caller stops waiting when its own ctx is done.
func (c *Client) get(ctx context.Context, query, path string, params url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := c.begin(query)
	endpoint := c.endpoint(path, params)
	shared := context.WithoutCancel(ctx)

	ch := c.group.DoChan(endpoint, func() (any, error) {
		return c.roundTrip(shared, http.MethodGet, endpoint, nil, "")
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return r.Err
		}
		if err := c.apply(t); err != nil {
			return err
		}
		return decode(r.Val.(*response), out)
	}
}

// send performs a write. Writes are neither sequenced nor de-duplicated.
func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = raw
		contentType = "application/json"
	}
	res, err := c.roundTrip(ctx, method, c.endpoint(path, nil), body, contentType)
	if err != nil {
		return err
	}
	return decode(res, out)
}
