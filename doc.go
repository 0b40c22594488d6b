/*
Package drills bundles small command-line exercises behind one script
registry: numeric helpers, a rectangle and square model, text file I/O, HTTP
fetch scripts against the Star Wars and to-do APIs, and page bindings that
map a DOM element to one AJAX call.

# Usage

	d, err := drills.New(drills.WithConfig(cfg))
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Run(ctx, "factorial", []string{"5"}, os.Stdout); err != nil {
		log.Fatal(err)
	}

Every script writes its result to the given writer. Usage errors are
returned unprinted; I/O failures are printed first and returned wrapped in
domain.ReportedError so callers do not show them twice.

The same registry backs the drills CLI, the widget page served by
"drills serve" and the MCP tools exposed by "drills mcp".
*/
package drills
