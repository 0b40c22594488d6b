package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/internal/logging"
	"github.com/aretw0/drills/internal/presentation/tui"
)

// RunOptions contains the flags shared by every command.
type RunOptions struct {
	ConfigPath string
	Debug      bool
	// Pretty forces markdown rendering of tabular output even when stdout
	// is not a terminal.
	Pretty bool
	Exact  bool
	// CharacterID overrides character_id when set.
	CharacterID string
	Stdout      io.Writer
}

// Build loads the configuration and returns the drills facade for opts.
func Build(opts RunOptions) (*drills.Drills, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.CharacterID != "" {
		cfg.CharacterID = opts.CharacterID
	}

	logger := logging.ForDebug(opts.Debug)
	dopts := []drills.Option{
		drills.WithConfig(cfg),
		drills.WithLogger(logger),
		drills.WithExact(opts.Exact),
	}
	if render := rendererFor(opts, logger); render != nil {
		dopts = append(dopts, drills.WithRenderer(render))
	}
	return drills.New(dopts...)
}

func rendererFor(opts RunOptions, logger *slog.Logger) tui.Renderer {
	if !opts.Pretty {
		f, ok := opts.Stdout.(*os.File)
		if !ok || !tui.IsTerminal(f) {
			return nil
		}
	}
	r, err := tui.NewRenderer()
	if err != nil {
		logger.Warn("markdown renderer unavailable", "err", err)
		return nil
	}
	return r
}

// RunScript runs one script with the options of the CLI.
func RunScript(ctx context.Context, opts RunOptions, name string, args []string) error {
	d, err := Build(opts)
	if err != nil {
		return err
	}
	return d.Run(ctx, name, args, opts.Stdout)
}
