package main

import (
	"fmt"

	"github.com/aretw0/drills/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Check the configuration file",
	Long:  `Loads the configuration (drills.yaml or the given path) and reports invalid keys or bindings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if len(args) > 0 {
			path = args[0]
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (%d bindings)\n", len(cfg.Bindings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
