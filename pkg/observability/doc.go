/*
Package observability holds the Prometheus collectors shared by the widget
server and the MCP server.

Collectors are registered on the Registerer handed to NewMetrics so tests can
use a private prometheus.Registry instead of the global one.
*/
package observability
