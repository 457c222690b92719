package main

import (
	"fmt"

	"github.com/aretw0/menuloop"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of menuloop",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "menuloop version %s\n", menuloop.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
