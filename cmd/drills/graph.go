package main

import (
	"fmt"

	"github.com/aretw0/drills/internal/cli"
	"github.com/aretw0/drills/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the widget bindings as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := cli.Build(runOptions(cmd))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(d.Config().Bindings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
