package root

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/session"
	"github.com/serhangurakan/life-timer/internal/ui"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Tick the timer headless until interrupted",
		Long:  "Keeps the timer reconciling once per second without a UI. Useful while the balance drains in the background; rings the bell when play time runs out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := app.sess.View()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mode", ui.ModeText(string(snap.Mode))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Ticking. Ctrl-C to stop."))

			interval := time.Duration(app.cfg.TickIntervalMs) * time.Millisecond
			session.NewScheduler(app.sess, interval).Run(ctx)

			snap = app.sess.View()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(snap.PlayBalanceSeconds))))
			return nil
		},
	}
}
