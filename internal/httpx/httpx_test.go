package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bullion/internal/apierr"
)

func newFastClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	client := New(slog.Default(), srv.Client())
	client.initialInterval = time.Millisecond
	return client
}

func Test_Get_RetryBudgetExhausted(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newFastClient(t, srv).Get(context.Background(), srv.URL)
	require.Error(t, err)

	// 1 initial attempt + 3 retries.
	require.Equal(t, 4, calls)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	require.Equal(t, srv.URL, apiErr.URL)
}

func Test_Get_NoRetryOnClientError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newFastClient(t, srv).Get(context.Background(), srv.URL)
	require.Error(t, err)
	require.Equal(t, 1, calls)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func Test_Get_RecoversAfterServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"price": 2000}`))
	}))
	defer srv.Close()

	body, err := newFastClient(t, srv).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.JSONEq(t, `{"price": 2000}`, string(body))
}

func Test_Get_TransportFailureClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := srv.URL
	srv.Close()

	client := New(slog.Default(), &http.Client{Timeout: time.Second})
	client.initialInterval = time.Millisecond

	_, err := client.Get(context.Background(), target)
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, target, apiErr.URL)
	require.Zero(t, apiErr.Status)
}
