package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "menuloop",
	Short: "menuloop runs interactive command menus",
	Long: `menuloop lists a set of options, reads a command line, dispatches it to the
matching handler and repeats until the break trigger is entered.
Menus are described in YAML files; without one, a built-in demo runs.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Log loop activity to stderr")
}

// menuArg returns the optional menu file argument.
func menuArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
