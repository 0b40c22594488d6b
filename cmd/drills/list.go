package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation/tui"
	"github.com/aretw0/drills/pkg/registry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available scripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := drills.New()
		if err != nil {
			return err
		}
		md := scriptsTable(d.Scripts())

		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty || tui.IsTerminal(os.Stdout) {
			if render, err := tui.NewRenderer(); err == nil {
				if out, err := render(md); err == nil {
					fmt.Fprint(cmd.OutOrStdout(), out)
					return nil
				}
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func scriptsTable(list []registry.Script) string {
	var b strings.Builder
	b.WriteString("| Group | Script | Arguments | Description |\n|---|---|---|---|\n")
	for _, s := range list {
		usage := strings.ReplaceAll(s.Usage, "|", "\\|")
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n", s.Group, s.Name, usage, s.Short)
	}
	return b.String()
}
