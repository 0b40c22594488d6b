package shape

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aretw0/drills/pkg/fileio"
)

// File names used by the Save and Load helpers, one list per kind.
const (
	RectanglesFile = "Rectangle.json"
	SquaresFile    = "Square.json"
)

// SaveRectangles writes rects to dir/Rectangle.json as a JSON list of
// ToMap objects, replacing the previous list. A nil slice saves [].
func SaveRectangles(dir string, rects []*Rectangle) error {
	return saveAll(filepath.Join(dir, RectanglesFile), rects)
}

// SaveSquares writes squares to dir/Square.json.
func SaveSquares(dir string, squares []*Square) error {
	return saveAll(filepath.Join(dir, SquaresFile), squares)
}

// LoadRectangles reads the list written by SaveRectangles. A missing file
// yields an empty list. Saved ids are kept and do not advance the counter.
func LoadRectangles(dir string) ([]*Rectangle, error) {
	return loadAll(filepath.Join(dir, RectanglesFile), func(m map[string]float64) *Rectangle {
		return NewRectangle(m["width"], m["height"], placement(m)...)
	})
}

// LoadSquares reads the list written by SaveSquares.
func LoadSquares(dir string) ([]*Square, error) {
	return loadAll(filepath.Join(dir, SquaresFile), func(m map[string]float64) *Square {
		return NewSquare(m["size"], placement(m)...)
	})
}

func placement(m map[string]float64) []Option {
	return []Option{WithID(int(m["id"])), At(int(m["x"]), int(m["y"]))}
}

func saveAll[T interface{ ToMap() map[string]any }](path string, shapes []T) error {
	list := make([]map[string]any, 0, len(shapes))
	for _, s := range shapes {
		list = append(list, s.ToMap())
	}
	return fileio.SaveJSON(path, list)
}

func loadAll[T any](path string, build func(map[string]float64) T) ([]T, error) {
	var list []map[string]float64
	if err := fileio.LoadJSON(path, &list); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}
	out := make([]T, 0, len(list))
	for _, m := range list {
		out = append(out, build(m))
	}
	return out, nil
}
