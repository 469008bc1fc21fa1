package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current timer state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := app.sess.View()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Life Timer"))
			fmt.Fprintln(out, ui.LabelValue("Mode", ui.ModeText(string(snap.Mode))))
			fmt.Fprintln(out, ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(snap.PlayBalanceSeconds))))
			fmt.Fprintln(out, ui.LabelValue("Work total", ui.FormatSeconds(snap.WorkElapsedSeconds)))
			fmt.Fprintln(out, "")

			if len(snap.Quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests yet. Add one with `lt quest add`."))
			} else {
				fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
				for _, q := range snap.Quests {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(shortID(q.ID)), q.Title, ui.Gold.Render(fmt.Sprintf("+%dm", q.RewardMinutes)))
				}
			}

			if len(snap.Inventory) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconBox+" Inventory"))
				for _, item := range snap.Inventory {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(shortID(item.ID)), item.Title, ui.Gold.Render(fmt.Sprintf("%dm", item.Minutes)))
				}
			}

			if !app.authed {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Muted.Render("Not signed in: state is in-memory only."))
			}
			return nil
		},
	}
	return cmd
}

// shortID trims a uuid for display; full ids still work everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
