package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newRedeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <item-id>...",
		Short: "Cash banked rewards into the play balance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			minutes := app.sess.Redeem(args)
			if minutes == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing redeemed (unknown ids?)."))
				return nil
			}

			snap := app.sess.View()
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%dm play time\n", ui.Good.Render(ui.IconCoin+" Redeemed"), minutes)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(snap.PlayBalanceSeconds))))
			return nil
		},
	}
}
