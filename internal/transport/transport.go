package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const (
	userAgent      = "wthr/0.1.0"
	defaultTimeout = 10 * time.Second
)

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
)

// permanentError marks a response that must not be retried (client errors).
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Backoff controls exponential backoff between retries.
type Backoff struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Client is the shared HTTP transport for all provider calls: one http.Client
// with a bounded timeout, retries with exponential backoff on transient
// failures, and a circuit breaker in front of everything.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	backoff    Backoff
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wthr",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		breaker:    cb,
		backoff: Backoff{
			MaxRetries:      2,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		logger: logger.With("component", "transport"),
	}
}

// GetJSON performs a GET against rawURL and decodes the JSON body into out.
// Rate-limit (429), 5xx, and network errors are retried; other non-2xx
// statuses fail immediately.
func (c *Client) GetJSON(rawURL string, out any) error {
	var attempt int

	for {
		result, err := c.breaker.Execute(func() (any, error) {
			return c.do(rawURL)
		})
		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return fmt.Errorf("unexpected result type from circuit breaker")
			}
			decErr := json.NewDecoder(resp.Body).Decode(out)
			_ = resp.Body.Close()
			if decErr != nil {
				return fmt.Errorf("failed to decode response: %w", decErr)
			}
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("circuit breaker open: %w", err)
		}

		if attempt >= c.backoff.MaxRetries {
			return err
		}

		delay := c.backoff.InitialInterval << attempt
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		c.logger.Debug("retrying request",
			"url", rawURL,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)
		time.Sleep(delay)
		attempt++
	}
}

func (c *Client) do(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &permanentError{err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_ = resp.Body.Close()
		return nil, errRateLimited
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d: %s", errServerError, resp.StatusCode, body)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, &permanentError{fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, body)}
	}

	return resp, nil
}
