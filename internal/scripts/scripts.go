// Package scripts wires every exercise to the script registry.
//
// Each entry point receives an explicit domain.Input and writes its result to
// in.Stdout. I/O failures are printed and returned wrapped in
// domain.Reported; usage errors are returned unprinted.
package scripts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/internal/logging"
	"github.com/aretw0/drills/internal/presentation/tui"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/fetch"
	"github.com/aretw0/drills/pkg/registry"
)

// Script groups.
const (
	GroupNumbers = "numbers"
	GroupShapes  = "shapes"
	GroupFiles   = "files"
	GroupWeb     = "web"
)

// Fetcher performs the HTTP round trips of the web scripts.
type Fetcher interface {
	Get(ctx context.Context, rawURL string, jsonMode bool) (fetch.Response, error)
	PostForm(ctx context.Context, rawURL string, form url.Values) (fetch.Response, error)
}

// Deps carries what the scripts need besides their Input.
type Deps struct {
	Fetcher Fetcher
	Config  config.Config
	Logger  *slog.Logger
	// Render, when set, formats tabular results as markdown for a terminal.
	Render tui.Renderer
	// Exact switches factorial to arbitrary precision.
	Exact bool
}

func (d *Deps) defaults() {
	if d.Logger == nil {
		d.Logger = logging.NewNop()
	}
	if d.Fetcher == nil {
		d.Fetcher = fetch.NewClient(fetch.WithTimeout(d.Config.Timeout), fetch.WithLogger(d.Logger))
	}
}

// New returns a registry holding every script bound to deps.
func New(deps Deps) *registry.Registry {
	deps.defaults()
	s := &set{Deps: deps}

	r := registry.NewRegistry()
	for _, script := range s.all() {
		r.Register(script)
	}
	return r
}

type set struct {
	Deps
}

func (s *set) all() []registry.Script {
	return []registry.Script{
		{Name: "factorial", Group: GroupNumbers, Usage: "<n>", Short: "Print the factorial of n", Run: s.factorial},
		{Name: "second-biggest", Group: GroupNumbers, Usage: "[n...]", Short: "Print the second biggest number", Run: s.secondBiggest},
		{Name: "to-integer", Group: GroupNumbers, Usage: "<value>", Short: "Print value when it is a number", Run: s.toInteger},
		{Name: "square", Group: GroupNumbers, Usage: "<size>", Short: "Print a square of X characters", Run: s.square},
		{Name: "add", Group: GroupNumbers, Usage: "<a> <b>", Short: "Print the sum of two numbers", Run: s.add},
		{Name: "peak", Group: GroupNumbers, Usage: "[n...]", Short: "Print a peak of a list of integers", Run: s.peak},

		{Name: "rectangle", Group: GroupShapes, Usage: "<width> <height> [x y] [print|display|rotate|double|area|perimeter|describe|summary|symbol=C...]", Short: "Build a rectangle and apply operations", Run: s.rectangle},
		{Name: "square-shape", Group: GroupShapes, Usage: "<size> [char]", Short: "Print a square filled with char", Run: s.squareShape},
		{Name: "shapes", Group: GroupShapes, Usage: "<dir> [rectangle <w> <h> | square <size>] [x y]", Short: "List the shapes saved in dir, or save a new one", Files: true, Run: s.shapes},

		{Name: "read", Group: GroupFiles, Usage: "<file>", Short: "Print the content of a file", Files: true, Run: s.read},
		{Name: "write", Group: GroupFiles, Usage: "<file> <content>", Short: "Write content to a file", Files: true, Run: s.write},
		{Name: "append", Group: GroupFiles, Usage: "<file> <text>", Short: "Append text to a file and print the characters added", Files: true, Run: s.appendText},
		{Name: "add-item", Group: GroupFiles, Usage: "[item...]", Short: "Add items to the JSON list file", Files: true, Run: s.addItem},

		{Name: "status", Group: GroupWeb, Usage: "<url>", Short: "Print the status code of a GET request", Run: s.status},
		{Name: "title", Group: GroupWeb, Usage: "<film-id>", Short: "Print the title of a Star Wars film", Run: s.title},
		{Name: "count", Group: GroupWeb, Usage: "<films-url>", Short: "Print the number of films featuring a character", Run: s.count},
		{Name: "store", Group: GroupWeb, Usage: "<url> <file>", Short: "Store a response body in a file", Files: true, Run: s.store},
		{Name: "tasks", Group: GroupWeb, Usage: "<todos-url>", Short: "Print completed tasks per user as an indented JSON object", Run: s.tasks},
		{Name: "header", Group: GroupWeb, Usage: "<url>", Short: "Print the X-Request-Id response header", Run: s.header},
		{Name: "post-email", Group: GroupWeb, Usage: "<url> <email>", Short: "POST an email and print the response body", Run: s.postEmail},
		{Name: "error-code", Group: GroupWeb, Usage: "<url>", Short: "Print the body or the error status of a GET request", Run: s.errorCode},
		{Name: "search-user", Group: GroupWeb, Usage: "[letter]", Short: "Search a user by letter", Run: s.searchUser},
		{Name: "widget", Group: GroupWeb, Usage: "<element> [input]", Short: "Resolve a page binding and print its texts", Run: s.widget},
	}
}

// fail prints err as the script output and marks it reported. When the
// output itself cannot be written, the write error is joined to the result.
func fail(w io.Writer, err error) error {
	if _, werr := fmt.Fprintln(w, err); werr != nil {
		return errors.Join(domain.Reported(err), werr)
	}
	return domain.Reported(err)
}

func required(in domain.Input, i int, name string) (string, error) {
	v, ok := in.Arg(i)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingArgument, name)
	}
	return v, nil
}
