package main

import (
	"github.com/aretw0/menuloop/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [menu.yaml]",
	Short: "Run a menu interactively",
	Long:  `Runs the menu described by the given file, or the built-in demo when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")
		jsonMode, _ := cmd.Flags().GetBool("json")
		suggest, _ := cmd.Flags().GetBool("suggest")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		return cli.Execute(cli.RunOptions{
			MenuPath:    menuArg(args),
			Debug:       debug,
			Plain:       plain,
			JSON:        jsonMode,
			Suggest:     suggest,
			MetricsFile: metricsFile,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("plain", false, "Disable colours, banner and markdown rendering")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (JSON-Lines input/output)")
	runCmd.Flags().Bool("suggest", true, "Suggest close commands when input is not recognized")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file when the session ends")

	// 'run' is the default command.
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
