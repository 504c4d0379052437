package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context carrying the bearer token to attach to
// outgoing calls. Requests made without a token are sent unauthenticated.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the bearer token previously stored with WithToken.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// Client is a thin wrapper over the platform REST API. It owns the base URL,
// auth-header injection and error translation; it never caches.
type Client struct {
	http *resty.Client
}

// New builds a Client against baseURL. Read requests (GET) are retried once on
// transport failure or a 5xx response; mutations are never retried.
func New(baseURL string, readRetries int) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetRetryCount(readRetries).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{http: rc}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if tok := TokenFromContext(ctx); tok != "" {
		req.SetAuthToken(tok)
	}
	return req
}

// Get performs a GET against path and decodes the response body into out.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	req := c.request(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	return c.finish(resp, err, out)
}

// Post performs a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	return c.finish(resp, err, out)
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Put(path)
	return c.finish(resp, err, out)
}

// Patch performs a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Patch(path)
	return c.finish(resp, err, out)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	resp, err := c.request(ctx).Delete(path)
	return c.finish(resp, err, out)
}

// Upload streams a file to path as multipart form field "file".
func (c *Client) Upload(ctx context.Context, path, filename string, file io.Reader, out interface{}) error {
	resp, err := c.request(ctx).
		SetFileReader("file", filename, file).
		Post(path)
	return c.finish(resp, err, out)
}

func (c *Client) finish(resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return networkError(err)
	}
	if resp.IsError() {
		return translateError(resp)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &APIError{Status: resp.StatusCode(), Message: "Unexpected response from the platform API"}
	}
	return nil
}
