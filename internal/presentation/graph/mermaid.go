package graph

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aretw0/drills/pkg/widget"
)

// GenerateMermaid produces a Mermaid flowchart of the page bindings:
// - Page: ((Circle)), the origin of every on-load binding
// - Input: [/Parallelogram/]
// - Trigger button: [[Subroutine]]
// - Element: [Rectangle], or [(Cylinder)] for append-mode lists
// Each element links to the API host it is filled from.
func GenerateMermaid(bindings []widget.Binding) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    page((\"page\"))\n")

	hosts := make(map[string]bool)
	for _, b := range bindings {
		el := sanitizeMermaidID(b.Element)

		opener, closer := "[", "]"
		if b.Mode == widget.ModeAppend {
			opener, closer = "[(", ")]"
		}
		fmt.Fprintf(&sb, "    %s%s\"#%s\"%s\n", el, opener, b.Element, closer)

		switch {
		case b.Trigger != "":
			trigger := sanitizeMermaidID(b.Trigger)
			fmt.Fprintf(&sb, "    %s[[\"#%s\"]]\n", trigger, b.Trigger)
			if b.Input != "" {
				input := sanitizeMermaidID(b.Input)
				fmt.Fprintf(&sb, "    %s[/\"#%s\"/]\n", input, b.Input)
				fmt.Fprintf(&sb, "    %s -- \"enter\" --> %s\n", input, el)
				fmt.Fprintf(&sb, "    %s -. \"value\" .-> %s\n", input, trigger)
			}
			fmt.Fprintf(&sb, "    %s -- \"click\" --> %s\n", trigger, el)
		default:
			fmt.Fprintf(&sb, "    page -- \"load\" --> %s\n", el)
		}

		host := hostOf(b.URL)
		hostID := "api_" + sanitizeMermaidID(host)
		if !hosts[host] {
			hosts[host] = true
			fmt.Fprintf(&sb, "    %s{{\"%s\"}}\n", hostID, host)
		}
		field := strings.ReplaceAll(b.Field, "\"", "'")
		fmt.Fprintf(&sb, "    %s -. \"%s\" .-> %s\n", hostID, field, el)
	}
	return sb.String()
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", ":", "_").Replace(id)
}
