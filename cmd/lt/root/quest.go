package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage quests (repeatable sources of play time)",
	}
	cmd.AddCommand(newQuestAddCmd(), newQuestListCmd(), newQuestDeleteCmd())
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var reward int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := app.sess.AddQuest(args[0], reward)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n",
				ui.Good.Render(ui.IconDone+" Added"), q.Title,
				ui.Gold.Render(fmt.Sprintf("+%dm", q.RewardMinutes)),
				ui.Muted.Render(q.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&reward, "reward", "r", 10, "Reward in play minutes per completion")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := app.sess.View()
			if len(snap.Quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quests"))
			for _, q := range snap.Quests {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Muted.Render(q.ID), q.Title, ui.Gold.Render(fmt.Sprintf("+%dm", q.RewardMinutes)))
			}
			return nil
		},
	}
}

func newQuestDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quest-id>",
		Short: "Delete a quest (banked rewards are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.sess.DeleteQuest(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted (if it existed)."))
			return nil
		},
	}
}
