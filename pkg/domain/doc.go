/*
Package domain contains the shared vocabulary of the drills scripts.

Every script is an independent entry point that receives an explicit Input
(positional arguments plus the streams it is allowed to touch) instead of
reading process globals. This package is kept free of I/O so that the CLI,
the widget server and the MCP server can all drive the same scripts.

# Key Entities

  - Input: the positional arguments and output stream of one invocation.
  - ReportedError: a failure that has already been printed to the user.
  - Messages: the fixed diagnostics printed on invalid input.
*/
package domain
