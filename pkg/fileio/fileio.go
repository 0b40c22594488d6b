// Package fileio holds the plain text and JSON file helpers used by the
// file scripts. Every function is a single synchronous operation.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// Read returns the contents of path as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the contents of path with content, creating the file if needed.
func Write(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// Append adds text to the end of path and returns the number of characters
// (not bytes) written.
func Append(path, text string) (int, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(text), nil
}

// SaveJSON writes v to path as JSON, overwriting any previous content.
func SaveJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadJSON decodes the JSON document stored at path into v.
// A missing file is reported with an error matching os.ErrNotExist.
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// AddItems loads the JSON string list at path (an absent file counts as an
// empty list), appends items and saves the result. It returns the new list.
func AddItems(path string, items ...string) ([]string, error) {
	list := []string{}
	if err := LoadJSON(path, &list); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	list = append(list, items...)
	if err := SaveJSON(path, list); err != nil {
		return nil, err
	}
	return list, nil
}
