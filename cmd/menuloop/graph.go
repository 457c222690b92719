package main

import (
	"fmt"

	"github.com/aretw0/menuloop/internal/presentation/graph"
	"github.com/aretw0/menuloop/pkg/menu"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <menu.yaml>",
	Short: "Export the menu structure as a Mermaid diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := menu.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
