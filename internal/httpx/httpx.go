package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"bullion/internal/apierr"
)

// maxRetries is the retry budget on top of the initial attempt.
const maxRetries = 3

// retryStatuses are the transient upstream statuses worth another attempt.
// Every other non-success status fails immediately.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client wraps an http.Client with the retry policy shared by all fetchers.
// The underlying client must carry an explicit request timeout.
type Client struct {
	logger          *slog.Logger
	http            *http.Client
	initialInterval time.Duration
}

func New(logger *slog.Logger, client *http.Client) *Client {
	return &Client{
		logger:          logger.With("component", "httpx"),
		http:            client,
		initialInterval: time.Second,
	}
}

// Get issues a GET against target and returns the body of a 2xx response.
// Transport failures and the statuses in retryStatuses are retried with
// exponential backoff; on exhaustion or any other failure the returned error
// is an *apierr.Error carrying the URL and status.
func (that *Client) Get(ctx context.Context, target string) ([]byte, error) {
	log := that.logger.With("method", "Get", "url", target)

	op := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := that.http.Do(req)
		if err != nil {
			return nil, apierr.NewTransport(target, err)
		}
		defer resp.Body.Close()

		if retryStatuses[resp.StatusCode] {
			return nil, apierr.NewStatus(target, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, backoff.Permanent(apierr.NewStatus(target, resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apierr.NewTransport(target, fmt.Errorf("read response body: %w", err))
		}
		return body, nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = that.initialInterval
	exp.RandomizationFactor = 0
	exp.Multiplier = 2

	notify := func(err error, next time.Duration) {
		log.Warn("retrying request", "error", err, "next_attempt_in", next)
	}

	body, err := backoff.RetryNotifyWithData(op, backoff.WithContext(backoff.WithMaxRetries(exp, maxRetries), ctx), notify)
	if err != nil {
		var apiErr *apierr.Error
		if !errors.As(err, &apiErr) {
			err = apierr.NewTransport(target, err)
		}
		return nil, err
	}

	return body, nil
}
