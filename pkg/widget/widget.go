// Package widget resolves the page bindings that tie a DOM element to one
// AJAX call: fetch a URL, pick a field out of the JSON answer and hand back
// the text the element should show, or a fixed failure message.
package widget

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aretw0/drills/pkg/fetch"
	"github.com/aretw0/drills/pkg/numeric"
	json "github.com/goccy/go-json"
)

// InputPlaceholder is replaced in a binding URL by the element input value.
const InputPlaceholder = "{input}"

// Mode says how the texts are written into the element.
type Mode string

const (
	// ModeText replaces the element text.
	ModeText Mode = "text"
	// ModeAppend appends one list item per text.
	ModeAppend Mode = "append"
)

// Binding ties an element to a single GET request.
type Binding struct {
	Element string `mapstructure:"element" json:"element"`
	URL     string `mapstructure:"url" json:"url"`
	Field   string `mapstructure:"field" json:"field"`
	Mode    Mode   `mapstructure:"mode" json:"mode"`
	Failure string `mapstructure:"failure" json:"failure"`
	// Input names the text input whose value fills the URL placeholder.
	Input string `mapstructure:"input" json:"input,omitempty"`
	// Trigger is the button that fires the request; empty means on page load.
	Trigger string `mapstructure:"trigger" json:"trigger,omitempty"`
}

// Result is what the page writes into the bound element.
type Result struct {
	Element string   `json:"element"`
	Mode    Mode     `json:"mode"`
	Texts   []string `json:"texts"`
	Failed  bool     `json:"failed"`
}

// Getter performs the GET request of a binding.
type Getter interface {
	Get(ctx context.Context, rawURL string, jsonMode bool) (fetch.Response, error)
}

// Validate checks that the binding can be resolved.
func (b Binding) Validate() error {
	if b.Element == "" {
		return fmt.Errorf("binding: element is required")
	}
	if b.URL == "" {
		return fmt.Errorf("binding %q: url is required", b.Element)
	}
	if b.Field == "" {
		return fmt.Errorf("binding %q: field is required", b.Element)
	}
	switch b.Mode {
	case "", ModeText, ModeAppend:
	default:
		return fmt.Errorf("binding %q: unknown mode %q", b.Element, b.Mode)
	}
	return nil
}

// Target returns the request URL with the placeholder filled by input.
func (b Binding) Target(input string) string {
	return strings.ReplaceAll(b.URL, InputPlaceholder, url.QueryEscape(input))
}

// Resolve performs the binding request once. Any failure (transport, status,
// body or missing field) yields the binding failure message; the error is
// returned alongside for logging.
func Resolve(ctx context.Context, g Getter, b Binding, input string) (Result, error) {
	mode := b.Mode
	if mode == "" {
		mode = ModeText
	}
	res := Result{Element: b.Element, Mode: mode}

	texts, err := resolve(ctx, g, b, input)
	if err != nil {
		res.Failed = true
		res.Texts = []string{b.Failure}
		return res, err
	}
	if mode == ModeText {
		texts = []string{strings.Join(texts, ", ")}
	}
	res.Texts = texts
	return res, nil
}

func resolve(ctx context.Context, g Getter, b Binding, input string) ([]string, error) {
	resp, err := g.Get(ctx, b.Target(input), true)
	if err != nil {
		return nil, err
	}
	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.Status)
	}

	var doc any
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("response body is not valid JSON: %w", err)
	}

	val, err := jsonpath.Get(b.Field, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %s: %w", b.Field, err)
	}

	var texts []string
	switch v := val.(type) {
	case []any:
		for _, item := range v {
			texts = append(texts, toText(item))
		}
	case nil:
	default:
		texts = []string{toText(v)}
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("jsonpath %s: no value found", b.Field)
	}
	return texts, nil
}

func toText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return numeric.Format(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

// Defaults returns the bindings of the bundled page, built on the given
// API base URLs.
func Defaults(swapiBase, helloBase string) []Binding {
	swapi := strings.TrimRight(swapiBase, "/")
	return []Binding{
		{
			Element: "character",
			URL:     swapi + "/people/5/?format=json",
			Field:   "$.name",
			Mode:    ModeText,
			Failure: "Failed to retrieve character data.",
		},
		{
			Element: "list_movies",
			URL:     swapi + "/films/?format=json",
			Field:   "$.results[*].title",
			Mode:    ModeAppend,
			Failure: "Failed to retrieve movie data.",
		},
		{
			Element: "hello",
			URL:     withQuery(helloBase, "lang=fr"),
			Field:   "$.hello",
			Mode:    ModeText,
			Failure: "Failed to retrieve data.",
		},
		{
			Element: "translation",
			URL:     withQuery(helloBase, "lang="+InputPlaceholder),
			Field:   "$.hello",
			Mode:    ModeText,
			Failure: "Failed to retrieve translation.",
			Input:   "language_code",
			Trigger: "btn_translate",
		},
	}
}

func withQuery(base, query string) string {
	if strings.Contains(base, "?") {
		return base + "&" + query
	}
	return base + "?" + query
}
