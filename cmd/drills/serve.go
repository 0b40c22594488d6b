package main

import (
	"os"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/cli"
	"github.com/aretw0/drills/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget page and its binding API",
	Long: `Starts an HTTP server with the widget page on /, the binding API on
/api/bindings/{element}, /health and Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := cli.Build(runOptions(cmd))
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = d.Config().Listen
		}

		tui.PrintBanner(os.Stderr, drills.Version)
		return cli.Serve(cmd.Context(), d, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (default from config)")
}
