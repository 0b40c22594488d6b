package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/drills/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "drills runs small command-line exercises",
	Long: `drills bundles numeric helpers, a rectangle model, file I/O and HTTP
fetch scripts behind one command, and serves the AJAX widget page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	ctx.Cancel()

	code, show := cli.ExitCode(err, ctx.Signal())
	if show {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default drills.yaml when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().Bool("pretty", false, "Render tables as markdown even when stdout is not a terminal")
}

// runOptions collects the shared flags of cmd.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	opts := cli.RunOptions{Stdout: cmd.OutOrStdout()}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Pretty, _ = cmd.Flags().GetBool("pretty")
	if f := cmd.Flags().Lookup("exact"); f != nil {
		opts.Exact, _ = cmd.Flags().GetBool("exact")
	}
	if f := cmd.Flags().Lookup("character"); f != nil {
		opts.CharacterID, _ = cmd.Flags().GetString("character")
	}
	return opts
}
