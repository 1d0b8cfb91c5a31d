package goldapi

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
	logger    *slog.Logger
	client    Getter
	goldURL   string
	silverURL string
}

// NewInteraction creates a new instance of Interaction with the metal price API.
func NewInteraction(logger *slog.Logger, client Getter, goldURL, silverURL string) *Interaction {
	return &Interaction{
		logger:    logger.With("component", "goldapi"),
		client:    client,
		goldURL:   goldURL,
		silverURL: silverURL,
	}
}

// FetchGold returns the gold spot price in USD per troy ounce.
func (that *Interaction) FetchGold(ctx context.Context) (model.PriceQuote, error) {
	return that.fetchPrice(ctx, model.Gold, that.goldURL)
}

// FetchSilver returns the silver spot price in USD per troy ounce.
func (that *Interaction) FetchSilver(ctx context.Context) (model.PriceQuote, error) {
	return that.fetchPrice(ctx, model.Silver, that.silverURL)
}

func (that *Interaction) fetchPrice(ctx context.Context, metal model.Metal, target string) (model.PriceQuote, error) {
	body, err := that.client.Get(ctx, target)
	if err != nil {
		return model.PriceQuote{}, err
	}

	var payload struct {
		Price *float64 `json:"price"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Price == nil {
		return model.PriceQuote{}, apierr.NewShape(target, string(body))
	}

	return model.PriceQuote{Metal: metal, USDPerOunce: *payload.Price}, nil
}
