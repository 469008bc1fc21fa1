package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newPenaltyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "penalty",
		Short: "Undo accidentally accrued time (-5m work, -2m30s play)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.sess.ApplyPenalty()

			snap := app.sess.View()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Penalty applied."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Work total", ui.FormatSeconds(snap.WorkElapsedSeconds)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(snap.PlayBalanceSeconds))))
			return nil
		},
	}
}
