package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/core"
	"github.com/serhangurakan/life-timer/internal/ui"
)

func switchMode(cmd *cobra.Command, target core.Mode) error {
	ctx := context.Background()
	app, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := app.sess.RequestMode(target); err != nil {
		return err
	}

	snap := app.sess.View()
	fmt.Fprintln(cmd.OutOrStdout(), ui.ModeText(string(snap.Mode)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(snap.PlayBalanceSeconds))))
	return nil
}

func newWorkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "work",
		Short: "Start working (earns play time at half rate)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return switchMode(cmd, core.ModeWork)
		},
	}
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start playing (spends the balance 1:1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return switchMode(cmd, core.ModePlay)
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer (neither earning nor spending)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return switchMode(cmd, core.ModeNothing)
		},
	}
}
