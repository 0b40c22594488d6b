package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/pkg/widget"
)

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Version  string
	Bindings []widget.Binding
	Append   widget.Mode
}

// Page handles GET /: one element per binding plus the inputs and buttons
// that trigger them. The script resolves each binding through the API.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	data := pageData{Version: drills.Version, Bindings: s.order, Append: widget.ModeAppend}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>drills widgets</title>
</head>
<body>
<header>drills {{.Version}}</header>
{{range .Bindings}}
<section>
    <h2>{{.Element}}</h2>
    {{if .Input}}<input id="{{.Input}}" type="text" />{{end}}
    {{if .Trigger}}<button id="{{.Trigger}}">Go</button>{{end}}
    {{if eq .Mode $.Append}}<ul id="{{.Element}}"></ul>{{else}}<div id="{{.Element}}"></div>{{end}}
</section>
{{end}}
<script>
    const bindings = {{.Bindings}};

    function render(b, res) {
        const el = document.getElementById(b.element);
        if (res.mode === "append") {
            for (const text of res.texts) {
                const li = document.createElement("li");
                li.textContent = text;
                el.appendChild(li);
            }
            return;
        }
        el.textContent = res.texts.join("");
    }

    function resolve(b) {
        let url = "/api/bindings/" + encodeURIComponent(b.element);
        if (b.input) {
            url += "?input=" + encodeURIComponent(document.getElementById(b.input).value);
        }
        fetch(url)
            .then((r) => r.json())
            .then((res) => render(b, res))
            .catch(() => render(b, { mode: "text", texts: [b.failure] }));
    }

    document.addEventListener("DOMContentLoaded", () => {
        for (const b of bindings) {
            if (!b.trigger) {
                resolve(b);
                continue;
            }
            document.getElementById(b.trigger).addEventListener("click", () => resolve(b));
            if (b.input) {
                document.getElementById(b.input).addEventListener("keydown", (e) => {
                    if (e.key === "Enter") {
                        resolve(b);
                    }
                });
            }
        }
    });
</script>
</body>
</html>
`
