package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"bullion/internal/config"
	"bullion/internal/httpx"
	"bullion/internal/interaction/erapi"
	"bullion/internal/interaction/goldapi"
	"bullion/internal/journal"
	"bullion/internal/usecases"
)

var (
	rootCmd = &cobra.Command{
		Use:          "bullion",
		Short:         "Track gold and silver spot prices per ounce and gram.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cnf    *config.Config
	logger *slog.Logger
)

func Execute() {
	initConfig()
	initLogger()

	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	cnf = config.MustLoad("./config.yml")
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func newTrackUseCase() *usecases.TrackUseCase {
	// One explicitly bounded HTTP client shared by both fetchers.
	httpClient := &http.Client{Timeout: cnf.Tracker.RequestTimeout}
	client := httpx.New(logger, httpClient)

	metals := goldapi.NewInteraction(logger, client, cnf.Tracker.GoldURL, cnf.Tracker.SilverURL)
	rates := erapi.NewInteraction(logger, client, cnf.Tracker.ExchangeURL, cnf.Tracker.Currency)
	logbook := journal.New(logger, cnf.Tracker.TableFile, cnf.Tracker.LogFile, cnf.Tracker.Currency)

	return usecases.NewTrackUseCase(logger, metals, rates, logbook)
}
