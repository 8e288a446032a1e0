package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	xerrors "shopfront-service/internal/pkg/errors"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Client is the typed client for the remote commerce REST API. Every call
// runs under the configured timeout and a shared circuit breaker; failures
// are mapped onto the xerrors taxonomy so callers never see raw transport or
// status-code errors.
type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	settings := gobreaker.Settings{
		Name:     "upstream-api",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Only transport and 5xx failures trip the breaker; a 4xx means the
		// upstream is healthy and rejecting this particular request.
		IsSuccessful: func(err error) bool {
			return err == nil || !xerrors.Retryable(err)
		},
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
	}
}

// do performs one upstream request and returns the raw response body.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) ([]byte, error) {
	data, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, xerrors.Wrap(err, "failed to build request")
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %v: %w", method, path, err, xerrors.ErrNetwork)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: reading body: %v: %w", method, path, err, xerrors.ErrNetwork)
		}

		if resp.StatusCode >= 400 {
			return nil, xerrors.FromStatusCode(resp.StatusCode, errorMessage(raw))
		}
		return raw, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn("upstream circuit breaker open", zap.String("path", path))
		return nil, fmt.Errorf("upstream unavailable: %w", xerrors.ErrNetwork)
	}
	return data, err
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	raw, err := c.do(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return xerrors.Wrap(err, "failed to marshal request")
	}
	raw, err := c.do(ctx, http.MethodPost, path, token, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func (c *Client) putJSON(ctx context.Context, path, token string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return xerrors.Wrap(err, "failed to marshal request")
	}
	raw, err := c.do(ctx, http.MethodPut, path, token, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %v: %w", err, xerrors.ErrServer)
	}
	return nil
}

// errorMessage pulls the human-readable message out of an upstream error
// body. The upstream is inconsistent about the field name.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
