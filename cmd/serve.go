package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tracker on a fixed schedule until interrupted.",
	Run: func(cmd *cobra.Command, _ []string) {
		log := logger.With("package", "cmd")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		trackUC := newTrackUseCase()

		sched := gocron.NewScheduler(time.UTC)
		_, err := sched.Cron(cnf.Tracker.Schedule).Do(func() {
			log.Info("running scheduled track", "schedule", cnf.Tracker.Schedule)
			// A failed run is already journaled; the schedule keeps going.
			if err := trackUC.Run(ctx, true); err != nil {
				log.Error("scheduled track failed", "error", err)
			}
		})
		cobra.CheckErr(err)

		log.Info("starting scheduler", "schedule", cnf.Tracker.Schedule)
		sched.StartAsync()

		<-ctx.Done()
		sched.Stop()
	},
}
