package api

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

const errorBodyMaxSize = 1 << 20

// Client issues the board service's REST calls. Every method normalizes
// failure into an *Error carrying a human-readable message: the server's
// {message} body when one parses, otherwise a per-operation fallback.
// Methods never panic and never return partial data alongside an error.
type Client struct {
	BaseURL string
	// Token supplies the current access token, or "" when signed out. The
	// Authorization header is omitted when empty; the server rejects
	// unauthenticated requests itself.
	Token func() string
	HTTP  *http.Client
}

// New creates a Client against baseURL. token may be nil for a client that
// only performs unauthenticated calls.
func New(baseURL string, token func() string) *Client {
	return &Client{BaseURL: baseURL, Token: token, HTTP: &http.Client{}}
}

// Error is the uniform failure result of an API call.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// errorBody is the structured error payload the server may attach to a
// non-success status.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, op, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := sonic.ConfigStd.Marshal(body)
		if err != nil {
			return &Error{Op: op, Message: fallback, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return &Error{Op: op, Message: fallback, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != nil {
		if tok := c.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &Error{Op: op, Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, errorBodyMaxSize))
		if readErr == nil {
			var eb errorBody
			if err := sonic.ConfigStd.Unmarshal(data, &eb); err == nil && eb.Message != "" {
				msg = eb.Message
			}
		}
		log.Debugf("%s: status %d: %s", op, resp.StatusCode, msg)
		return &Error{Op: op, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Op: op, Status: resp.StatusCode, Message: fallback, Err: err}
		}
	}
	return nil
}
