package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/tui"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live timer view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			interval := time.Duration(app.cfg.TickIntervalMs) * time.Millisecond
			return tui.RunWatch(ctx, app.sess, interval, cmd.OutOrStdout())
		},
	}
}
