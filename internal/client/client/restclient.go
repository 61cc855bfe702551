package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/common"
	"github.com/akazakov/jobtrack/internal/logging"
	"github.com/google/uuid"
)

// RESTClient talks to the record store over HTTP.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewRESTClient builds a client for the store at baseURL. The timeout
// bounds each request; callers still pass contexts for cancellation.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "restclient"),
	}
}

// do performs one request and decodes the JSON response into out (when
// out is non-nil). Failures map to the client error taxonomy:
//   - context cancellation is returned as the context error, unchanged;
//   - network errors become *TransportError with StatusCode 0;
//   - non-2xx statuses become *TransportError with the status code.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled or superseded; the caller suppresses this.
			return ctx.Err()
		}
		c.log.Warn(ctx, "request failed", "method", method, "url", u, "request_id", requestID, "error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method, "url", u, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &TransportError{Err: fmt.Errorf("decoding %s %s response: %w", method, path, err)}
	}
	return nil
}

// notFoundAs404 converts an HTTP 404 transport error into the store's
// "identifier does not exist" signal. Only get-by-id operations use it;
// for everything else a 4xx stays a transport failure.
func notFoundAs404(err error) error {
	var te *TransportError
	if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
		return common.ErrNotFound
	}
	return err
}

func (c *RESTClient) ListJobs(ctx context.Context, q JobQuery) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", q.Values(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *RESTClient) GetJob(ctx context.Context, id models.ID) (*models.Job, error) {
	var job models.Job
	path := "/jobs/" + url.PathEscape(id.String())
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &job); err != nil {
		return nil, notFoundAs404(err)
	}
	return &job, nil
}

func (c *RESTClient) CreateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	var saved models.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, job, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateJob replaces the whole record; the store has no partial-patch
// semantics here.
func (c *RESTClient) UpdateJob(ctx context.Context, id models.ID, job models.Job) (*models.Job, error) {
	var saved models.Job
	path := "/jobs/" + url.PathEscape(id.String())
	if err := c.do(ctx, http.MethodPut, path, nil, job, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *RESTClient) DeleteJob(ctx context.Context, id models.ID) error {
	path := "/jobs/" + url.PathEscape(id.String())
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// FindUsersByCredentials matches accounts by exact username and password.
// The password travels as a clear-text query parameter; that is the
// product's authentication scheme, reproduced as-is.
func (c *RESTClient) FindUsersByCredentials(ctx context.Context, username, password string) ([]models.User, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) FindUsersByUsername(ctx context.Context, username string) ([]models.User, error) {
	q := url.Values{}
	q.Set("username", username)

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var saved models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, user, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *RESTClient) GetUser(ctx context.Context, id models.ID) (*models.User, error) {
	var user models.User
	path := "/users/" + url.PathEscape(id.String())
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, notFoundAs404(err)
	}
	return &user, nil
}
