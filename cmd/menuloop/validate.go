package main

import (
	"fmt"

	"github.com/aretw0/menuloop/pkg/menu"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <menu.yaml>",
	Short: "Check a menu file for consistency",
	Long:  `Reports missing triggers, unknown actions and options that can never be selected.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := menu.Load(args[0])
		if err != nil {
			return err
		}
		if err := menu.Validate(def, registry.Builtin()); err != nil {
			return fmt.Errorf("validation failed:\n%w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Menu is valid!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
