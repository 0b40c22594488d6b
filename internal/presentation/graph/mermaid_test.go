package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/drills/internal/presentation/graph"
	"github.com/aretw0/drills/pkg/widget"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(widget.Defaults("https://swapi.test/api/", "https://hello.test/"))

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `character["#character"]`)
	assert.Contains(t, out, `list_movies[("#list_movies")]`)
	assert.Contains(t, out, `page -- "load" --> hello`)
	assert.Contains(t, out, `btn_translate[["#btn_translate"]]`)
	assert.Contains(t, out, `language_code[/"#language_code"/]`)
	assert.Contains(t, out, `btn_translate -- "click" --> translation`)
	assert.NotContains(t, out, `page -- "load" --> translation`)

	// One node per API host.
	assert.Equal(t, 1, strings.Count(out, `api_swapi_test{{"swapi.test"}}`))
	assert.Contains(t, out, `api_hello_test -. "$.hello" .-> translation`)
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph TD\n    page((\"page\"))\n", graph.GenerateMermaid(nil))
}
