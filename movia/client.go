package movia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// TokenStore supplies the current bearer token and accepts a new one
// after a successful login or registration. It is implemented by
// session.Manager; the client reads from it but never clears it.
type TokenStore interface {
	CurrentToken() (string, bool)
	SaveToken(token string) error
}

// Client talks to the Movia movie catalog API
type Client struct {
	baseURL    string
	tokens     TokenStore
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// New creates a new Movia client
func New(baseURL string, tokens TokenStore, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if tokens == nil {
		return nil, fmt.Errorf("%w: token store is required", ErrInvalidConfig)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}

	options := clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}, nil
}

// do performs a request against baseURL+path. A non-nil body is sent
// as JSON; a non-nil out receives the decoded success body. Non-2xx
// statuses become *ServerError, transport failures *NetworkError.
// The session is never mutated here.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	requestURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Path: path, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return &RequestError{Path: path, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token, ok := c.tokens.CurrentToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("Making Movia API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &ServerError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
			Body:       string(respBody),
		}
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Str("message", serr.Message).
			Msg("Movia API request failed")
		return serr
	}

	if out == nil {
		return nil
	}
	if len(respBody) == 0 {
		return ErrNoData
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}
