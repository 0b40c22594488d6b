// Package graph renders the page bindings as a Mermaid flowchart.
package graph
