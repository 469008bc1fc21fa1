package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/ui"
)

const Version = "0.1.0"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "lt",
	Short:         "life-timer — bank work time, spend it on play",
	Long:          "life-timer tracks time spent working, converts it into a spendable play balance, and banks quest rewards for later redemption.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.life-timer.yaml)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newWorkCmd(),
		newPlayCmd(),
		newStopCmd(),
		newPenaltyCmd(),
		newQuestCmd(),
		newClaimCmd(),
		newInventoryCmd(),
		newRedeemCmd(),
		newWatchCmd(),
		newRunCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
