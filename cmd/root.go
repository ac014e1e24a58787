package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang-trade-calculator/internal/delivery/console"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradecalc",
	Short: "Calculate take-profit and stop-loss prices for a trade",
	Long: `tradecalc computes the limit close (take-profit) and stop-loss prices of a
single trade, plus the profit or loss realised at each, from the entry price,
order size, direction and the profit target / stop loss fractions.

Run without arguments for the interactive prompt. Press Ctrl-C to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          Start,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newCalculateCmd())
	rootCmd.AddCommand(versionCmd)
}

// Start runs the interactive session until EOF or an interrupt signal.
func Start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency()
	if err != nil {
		return err
	}
	defer appDep.Close()

	session := console.NewSession(
		appDep.cfg,
		appDep.log,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		appDep.cache,
		appDep.services.TradingService,
	)
	return session.Run(ctx)
}
