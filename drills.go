package drills

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/internal/logging"
	"github.com/aretw0/drills/internal/presentation/tui"
	"github.com/aretw0/drills/internal/scripts"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/fetch"
	"github.com/aretw0/drills/pkg/registry"
	"github.com/aretw0/drills/pkg/widget"
)

// Version is the release of the drills binary and library.
const Version = "0.1.0"

// Drills is the high-level entry point: a registry of scripts bound to one
// configuration, one HTTP client and one logger.
type Drills struct {
	registry *registry.Registry
	config   config.Config
	fetcher  scripts.Fetcher
	logger   *slog.Logger
	render   tui.Renderer
	exact    bool
}

// Option defines a functional option for configuring Drills.
type Option func(*Drills)

// WithConfig replaces the built-in configuration.
func WithConfig(cfg config.Config) Option {
	return func(d *Drills) {
		d.config = cfg
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Drills) {
		d.logger = logger
	}
}

// WithFetcher injects the HTTP client used by the web scripts and bindings.
func WithFetcher(f scripts.Fetcher) Option {
	return func(d *Drills) {
		d.fetcher = f
	}
}

// WithRenderer formats tabular output as markdown.
func WithRenderer(r tui.Renderer) Option {
	return func(d *Drills) {
		d.render = r
	}
}

// WithExact switches factorial to arbitrary precision.
func WithExact(exact bool) Option {
	return func(d *Drills) {
		d.exact = exact
	}
}

// New builds the script registry.
func New(opts ...Option) (*Drills, error) {
	d := &Drills{config: config.Default()}
	for _, opt := range opts {
		opt(d)
	}

	if len(d.config.Bindings) == 0 {
		d.config.Bindings = widget.Defaults(d.config.SwapiURL, d.config.HelloURL)
	}
	if err := d.config.Validate(); err != nil {
		return nil, err
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	if d.fetcher == nil {
		d.fetcher = fetch.NewClient(fetch.WithTimeout(d.config.Timeout), fetch.WithLogger(d.logger))
	}

	d.registry = scripts.New(scripts.Deps{
		Fetcher: d.fetcher,
		Config:  d.config,
		Logger:  d.logger,
		Render:  d.render,
		Exact:   d.exact,
	})
	return d, nil
}

// Run executes the named script with args, writing its output to stdout.
// A nil stdout means os.Stdout.
func (d *Drills) Run(ctx context.Context, name string, args []string, stdout io.Writer) error {
	d.logger.Debug("running script", "script", name, "args", strings.Join(args, " "))
	err := d.registry.Execute(ctx, name, domain.NewInput(args, stdout, nil))
	if err != nil {
		d.logger.Debug("script failed", "script", name, "err", err)
	}
	return err
}

// Scripts lists every registered script by group, then name.
func (d *Drills) Scripts() []registry.Script {
	return d.registry.List()
}

// Lookup returns the script registered under name.
func (d *Drills) Lookup(name string) (registry.Script, bool) {
	return d.registry.Get(name)
}

// Config returns the configuration the scripts are bound to.
func (d *Drills) Config() config.Config {
	return d.config
}

// Fetcher returns the HTTP client shared by the scripts.
func (d *Drills) Fetcher() scripts.Fetcher {
	return d.fetcher
}

// Logger returns the structured logger.
func (d *Drills) Logger() *slog.Logger {
	return d.logger
}
