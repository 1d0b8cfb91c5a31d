package usecases

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bullion/internal/apierr"
	"bullion/internal/convert"
	"bullion/internal/model"
)

type MetalInteraction interface {
	FetchGold(ctx context.Context) (model.PriceQuote, error)
	FetchSilver(ctx context.Context) (model.PriceQuote, error)
}

type RateInteraction interface {
	FetchUSDToLocal(ctx context.Context) (model.ExchangeRate, error)
}

type Journal interface {
	Append(record *model.PriceRecord, quiet bool) error
	AppendError(timestamp time.Time, message string, quiet bool) error
}

// FixtureRecord is the synthetic record written by test mode instead of
// fetching live prices.
var FixtureRecord = model.PriceRecord{
	GoldUSDOunce:     2000.00,
	SilverUSDOunce:   25.00,
	GoldLocalOunce:   96260.00,
	SilverLocalOunce: 1203.25,
	GoldUSDGram:      64.28,
	SilverUSDGram:    0.80,
	GoldLocalGram:    3092.50,
	SilverLocalGram:  38.50,
}

type TrackUseCase struct {
	logger  *slog.Logger
	metals  MetalInteraction
	rates   RateInteraction
	journal Journal
}

func NewTrackUseCase(logger *slog.Logger, metals MetalInteraction, rates RateInteraction, journal Journal) *TrackUseCase {
	return &TrackUseCase{logger: logger.With("component", "track"), metals: metals, rates: rates, journal: journal}
}

// Run executes one fetch, convert, log cycle. Upstream API failures are
// written as a single error line to the plain-text log and returned; no
// table row is written for a failed run. Errors outside the upstream API
// taxonomy are returned untouched.
func (that *TrackUseCase) Run(ctx context.Context, quiet bool) error {
	log := that.logger.With("method", "Run")

	record, err := that.collect(ctx)
	if err != nil {
		var apiErr *apierr.Error
		if !errors.As(err, &apiErr) {
			return err
		}

		log.Error("failed to collect prices", "error", err)
		if logErr := that.journal.AppendError(time.Now().UTC(), err.Error(), quiet); logErr != nil {
			return errors.Join(err, logErr)
		}
		return err
	}

	if err := that.journal.Append(record, quiet); err != nil {
		log.Error("failed to append record", "error", err)
		return err
	}

	log.Info("recorded prices", "gold_usd_oz", record.GoldUSDOunce, "silver_usd_oz", record.SilverUSDOunce, "rate", record.GoldLocalOunce/record.GoldUSDOunce)
	return nil
}

// RunFixture appends the fixture record without touching the network.
func (that *TrackUseCase) RunFixture(quiet bool) error {
	log := that.logger.With("method", "RunFixture")

	record := FixtureRecord
	record.Timestamp = time.Now().UTC()

	if err := that.journal.Append(&record, quiet); err != nil {
		log.Error("failed to append fixture record", "error", err)
		return err
	}

	return nil
}

func (that *TrackUseCase) collect(ctx context.Context) (*model.PriceRecord, error) {
	gold, err := that.metals.FetchGold(ctx)
	if err != nil {
		return nil, err
	}

	silver, err := that.metals.FetchSilver(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := that.rates.FetchUSDToLocal(ctx)
	if err != nil {
		return nil, err
	}

	goldGram := convert.GramPrice(gold.USDPerOunce)
	silverGram := convert.GramPrice(silver.USDPerOunce)

	// One instant shared by the table row and the log line.
	return &model.PriceRecord{
		Timestamp:        time.Now().UTC(),
		GoldUSDOunce:     gold.USDPerOunce,
		SilverUSDOunce:   silver.USDPerOunce,
		GoldLocalOunce:   convert.ToLocal(gold.USDPerOunce, rate.Rate),
		SilverLocalOunce: convert.ToLocal(silver.USDPerOunce, rate.Rate),
		GoldUSDGram:      goldGram,
		SilverUSDGram:    silverGram,
		GoldLocalGram:    convert.ToLocal(goldGram, rate.Rate),
		SilverLocalGram:  convert.ToLocal(silverGram, rate.Rate),
	}, nil
}
