package api

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

	"github.com/sony/gobreaker"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// Client is the typed HTTP client for the booking backend. Every method
// attaches the caller's bearer token at call time; the client itself holds
// no credentials.
type Client struct {
	baseURL  string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
	strategy retry.Strategy
	log      logger.Logger
}

type Options struct {
	BaseURL        string
	Timeout        time.Duration
	BreakerTimeout time.Duration
}

func New(opts Options, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "bookingBackend",
			MaxRequests: 1,
			Timeout:     opts.BreakerTimeout,
			// A 4xx answer is the backend working as intended (a stale
			// token 401s on every resolve); only transport failures and
			// 5xx outcomes may trip the breaker.
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				return errors.Is(err, domain.ErrUnauthorized) ||
					errors.Is(err, domain.ErrNotFound) ||
					errors.Is(err, domain.ErrBadRequest)
			},
		}),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
		log: log,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one request through the circuit breaker and maps the outcome
// onto the domain error taxonomy.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, token, body, out)
	})
	_ = res

	switch {
	case err == nil:
		return nil
	case err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests:
		return fmt.Errorf("%w: circuit open", domain.ErrBackendUnavailable)
	default:
		return err
	}
}

// get performs an idempotent read with retries. Only transport-level
// failures are retried; a 401 or 404 is a final answer. Availability checks
// and booking submissions never go through here; they are reported once.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	var last error
	err := retry.Do(func() error {
		last = c.do(ctx, http.MethodGet, path, token, nil, out)
		if last != nil && !errors.Is(last, domain.ErrBackendUnavailable) {
			return nil // terminal error, stop retrying
		}
		return last
	}, c.strategy)
	if err != nil {
		return err
	}
	return last
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.statusError(resp)
}

func (c *Client) statusError(resp *http.Response) error {
	var eb errorBody
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else {
			msg = eb.Error
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", domain.ErrBadRequest, msg)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
}
