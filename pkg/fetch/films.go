package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a body that should be JSON is not.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// FilmURL joins the film resource path onto the API base URL.
func FilmURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/films/" + url.PathEscape(id)
}

// Title returns the title field of a film document.
func Title(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrInvalidJSON
	}
	title := gjson.GetBytes(body, "title")
	if !title.Exists() {
		return "", fmt.Errorf("title: %w", domain.ErrNotFound)
	}
	return title.String(), nil
}

// CountCharacter counts the films in the results array whose characters
// list holds a URL ending with the /<characterID>/ path segment. Each film
// counts at most once.
func CountCharacter(body []byte, characterID string) (int, error) {
	if !gjson.ValidBytes(body) {
		return 0, ErrInvalidJSON
	}
	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		return 0, fmt.Errorf("results: %w", domain.ErrNotFound)
	}

	suffix := "/" + strings.Trim(characterID, "/")
	count := 0
	results.ForEach(func(_, film gjson.Result) bool {
		film.Get("characters").ForEach(func(_, character gjson.Result) bool {
			if strings.HasSuffix(strings.TrimRight(character.String(), "/"), suffix) {
				count++
				return false
			}
			return true
		})
		return true
	})
	return count, nil
}
