package goldapi_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bullion/internal/apierr"
	"bullion/internal/httpx"
	"bullion/internal/interaction/goldapi"
	"bullion/internal/model"
)

func newInteraction(t *testing.T, goldBody, silverBody string) *goldapi.Interaction {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/price/XAU", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(goldBody))
	})
	mux.HandleFunc("/price/XAG", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(silverBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := httpx.New(slog.Default(), srv.Client())
	return goldapi.NewInteraction(slog.Default(), client, srv.URL+"/price/XAU", srv.URL+"/price/XAG")
}

func Test_FetchGold(t *testing.T) {
	interaction := newInteraction(t,
		`{"name":"Gold","price":3657.3,"symbol":"XAU","updatedAt":"2026-08-30T11:58:02Z"}`,
		`{"name":"Silver","price":42.11,"symbol":"XAG","updatedAt":"2026-08-30T11:58:02Z"}`,
	)

	quote, err := interaction.FetchGold(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Gold, quote.Metal)
	require.InEpsilon(t, 3657.3, quote.USDPerOunce, 1e-9)
}

func Test_FetchSilver(t *testing.T) {
	interaction := newInteraction(t,
		`{"name":"Gold","price":3657.3,"symbol":"XAU"}`,
		`{"name":"Silver","price":42.11,"symbol":"XAG"}`,
	)

	quote, err := interaction.FetchSilver(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Silver, quote.Metal)
	require.InEpsilon(t, 42.11, quote.USDPerOunce, 1e-9)
}

func Test_FetchGold_MissingPrice(t *testing.T) {
	interaction := newInteraction(t, `{"name":"Gold","symbol":"XAU"}`, `{}`)

	_, err := interaction.FetchGold(context.Background())
	require.ErrorIs(t, err, apierr.ErrUnexpectedShape)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Body, `"symbol":"XAU"`)
}

func Test_FetchGold_MalformedBody(t *testing.T) {
	interaction := newInteraction(t, `not json at all`, `{}`)

	_, err := interaction.FetchGold(context.Background())
	require.ErrorIs(t, err, apierr.ErrUnexpectedShape)
}
