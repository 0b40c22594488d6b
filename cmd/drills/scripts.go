package main

import (
	"strings"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/cli"
	"github.com/aretw0/drills/internal/scripts"
	"github.com/aretw0/drills/pkg/registry"
	"github.com/spf13/cobra"
)

var groupTitles = map[string]string{
	scripts.GroupNumbers: "Number scripts:",
	scripts.GroupShapes:  "Shape scripts:",
	scripts.GroupFiles:   "File scripts:",
	scripts.GroupWeb:     "Web scripts:",
}

func init() {
	for _, id := range []string{scripts.GroupNumbers, scripts.GroupShapes, scripts.GroupFiles, scripts.GroupWeb} {
		rootCmd.AddGroup(&cobra.Group{ID: id, Title: groupTitles[id]})
	}

	d, err := drills.New()
	if err != nil {
		panic(err)
	}
	for _, s := range d.Scripts() {
		rootCmd.AddCommand(newScriptCmd(s))
	}
}

// newScriptCmd wraps a registered script. Flag parsing is done by hand so
// negative numbers ("factorial -3") stay positional.
func newScriptCmd(s registry.Script) *cobra.Command {
	cmd := &cobra.Command{
		Use:                s.Name + " " + s.Usage,
		Short:              s.Short,
		GroupID:            s.Group,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, positional := splitArgs(cmd, args)
			// ParseFlags is a no-op with DisableFlagParsing; InheritedFlags
			// merges the persistent flags into cmd.Flags() first.
			cmd.InheritedFlags()
			if err := cmd.Flags().Parse(flags); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			return cli.RunScript(cmd.Context(), runOptions(cmd), s.Name, positional)
		},
	}

	switch s.Name {
	case "factorial":
		cmd.Flags().Bool("exact", false, "Compute with arbitrary precision")
	case "count":
		cmd.Flags().String("character", "", "Character id to look for (default from config)")
	}
	return cmd
}

// splitArgs separates the known --flags of cmd from positional arguments.
// Everything after "--" is positional.
func splitArgs(cmd *cobra.Command, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flags, append(positional, args[i+1:]...)
		case a == "-h":
			flags = append(flags, a)
		case strings.HasPrefix(a, "--") && len(a) > 2:
			name, _, hasValue := strings.Cut(a[2:], "=")
			f := cmd.Flag(name)
			if f == nil {
				positional = append(positional, a)
				continue
			}
			flags = append(flags, a)
			if !hasValue && f.Value.Type() != "bool" && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}
	return flags, positional
}
