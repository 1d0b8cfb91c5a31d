package cmd

import (
	"github.com/spf13/cobra"
)

var (
	trackQuiet bool
	trackTest  bool

	trackCmd = &cobra.Command{
		Use:   "track",
		Short: "Fetch current prices once and append them to the log files.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trackUC := newTrackUseCase()

			if trackTest {
				return trackUC.RunFixture(trackQuiet)
			}

			return trackUC.Run(cmd.Context(), trackQuiet)
		},
	}
)

func init() {
	trackCmd.Flags().BoolVar(&trackQuiet, "quiet", false, "Suppress console output (for cron).")
	trackCmd.Flags().BoolVar(&trackTest, "test", false, "Append a fixed test record without any network calls.")
}
