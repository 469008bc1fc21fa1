package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <quest-id>",
		Short: "Complete a quest and bank its reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := app.sess.ClaimQuest(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s banked (%s)\n",
				ui.Good.Render(ui.IconDone+" Claimed"), item.Title,
				ui.Gold.Render(fmt.Sprintf("%dm", item.Minutes)),
				ui.Muted.Render(item.ID))
			return nil
		},
	}
}
