package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "List banked rewards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := app.sess.View()
			if len(snap.Inventory) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Inventory is empty. Claim a quest first."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBox, "Inventory"))
			for _, item := range snap.Inventory {
				claimed := time.UnixMilli(item.CreatedAt).Format("2006-01-02 15:04")
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					ui.Muted.Render(item.ID), item.Title,
					ui.Gold.Render(fmt.Sprintf("%dm", item.Minutes)),
					ui.Muted.Render("claimed "+claimed))
			}
			return nil
		},
	}
}
