package erapi

import (
	"context"
	"encoding/json"
	"log/slog"

	"bullion/internal/apierr"
	"bullion/internal/model"
)

// Getter is the retrying HTTP client shared by the fetchers.
type Getter interface {
	Get(ctx context.Context, target string) ([]byte, error)
}

type Interaction struct {
	logger   *slog.Logger
	client   Getter
	url      string
	currency string
}

// NewInteraction creates a new instance of Interaction with the exchange rate API.
func NewInteraction(logger *slog.Logger, client Getter, url, currency string) *Interaction {
	return &Interaction{
		logger:   logger.With("component", "erapi"),
		client:   client,
		url:      url,
		currency: currency,
	}
}

// FetchUSDToLocal returns the USD rate into the configured local currency.
// The endpoint must report result=success and list the currency in its
// rates mapping; anything else is an unexpected-shape error.
func (that *Interaction) FetchUSDToLocal(ctx context.Context) (model.ExchangeRate, error) {
	body, err := that.client.Get(ctx, that.url)
	if err != nil {
		return model.ExchangeRate{}, err
	}

	var payload struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Result != "success" || payload.Rates == nil {
		return model.ExchangeRate{}, apierr.NewShape(that.url, string(body))
	}

	rate, ok := payload.Rates[that.currency]
	if !ok {
		return model.ExchangeRate{}, apierr.NewShape(that.url, string(body))
	}

	return model.ExchangeRate{Base: "USD", Quote: that.currency, Rate: rate}, nil
}
