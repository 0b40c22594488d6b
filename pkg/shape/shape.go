// Package shape models the rectangle and square value objects.
//
// A Square is not a subtype of Rectangle: it wraps one whose sides were
// equal at construction and adds a character-fill print. Both satisfy Shape.
//
// Every shape carries an id, drawn from a process-wide counter unless one is
// given, and an x/y offset used by Display.
package shape

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/numeric"
)

// Shape is the capability set shared by rectangles and squares.
type Shape interface {
	ID() int
	Width() (float64, bool)
	Height() (float64, bool)
	Print() string
	Display() string
	Summary() string
	SetSymbol(symbol string)
	Rotate()
	Double()
	Area() float64
	Perimeter() float64
	ToMap() map[string]any
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Option configures a shape at construction.
type Option func(*Rectangle)

// WithID sets the id instead of taking the next one from the counter.
// Zero keeps the counter behaviour.
func WithID(id int) Option {
	return func(r *Rectangle) {
		r.id = id
	}
}

// At places the shape x columns right and y lines down when displayed.
// Negative offsets are treated as zero.
func At(x, y int) Option {
	return func(r *Rectangle) {
		r.x = max(x, 0)
		r.y = max(y, 0)
	}
}

// WithSymbol draws the shape with symbol instead of X.
func WithSymbol(symbol string) Option {
	return func(r *Rectangle) {
		r.symbol = symbol
	}
}

// Rectangle holds a width and a height that are either both set or both unset.
type Rectangle struct {
	id     int
	width  float64
	height float64
	x, y   int
	symbol string
	valid  bool
}

// NewRectangle builds a rectangle. When w or h is zero, or their product is
// not a positive number, the rectangle is left without dimensions.
func NewRectangle(w, h float64, opts ...Option) *Rectangle {
	r := &Rectangle{}
	if validDimensions(w, h) {
		r.width, r.height, r.valid = w, h, true
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == 0 {
		r.id = nextID()
	}
	return r
}

// NewRectangleSquare builds a plain Rectangle whose sides are both size.
func NewRectangleSquare(size float64, opts ...Option) *Rectangle {
	return NewRectangle(size, size, opts...)
}

func validDimensions(w, h float64) bool {
	product := w * h
	return w != 0 && h != 0 && product > 0 && !math.IsNaN(product)
}

// Valid reports whether the constructor accepted the dimensions.
func (r *Rectangle) Valid() bool {
	return r.valid
}

func (r *Rectangle) ID() int {
	return r.id
}

func (r *Rectangle) Width() (float64, bool) {
	return r.width, r.valid
}

func (r *Rectangle) Height() (float64, bool) {
	return r.height, r.valid
}

// Offset returns the display offset.
func (r *Rectangle) Offset() (x, y int) {
	return r.x, r.y
}

// SetSymbol changes the fill used by Print and Display. An empty symbol
// restores X.
func (r *Rectangle) SetSymbol(symbol string) {
	r.symbol = symbol
}

func (r *Rectangle) fill() string {
	if r.symbol == "" {
		return domain.DefaultFill
	}
	return r.symbol
}

// Print draws the rectangle, rows joined by newlines.
// A rectangle without dimensions prints as the empty string.
func (r *Rectangle) Print() string {
	return r.draw(r.fill(), 0)
}

// Display is Print shifted by the offset: y empty lines first, then every
// row indented by x spaces.
func (r *Rectangle) Display() string {
	if !r.valid {
		return ""
	}
	return strings.Repeat("\n", r.y) + r.draw(r.fill(), r.x)
}

func (r *Rectangle) draw(fill string, indent int) string {
	if !r.valid {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	for i := 0; float64(i) < r.height; i++ {
		b.WriteString(pad)
		for j := 0; float64(j) < r.width; j++ {
			b.WriteString(fill)
		}
		if float64(i) < r.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Rotate swaps width and height in place.
func (r *Rectangle) Rotate() {
	r.width, r.height = r.height, r.width
}

// Double scales both sides by two in place. No validation is repeated.
func (r *Rectangle) Double() {
	r.width *= 2
	r.height *= 2
}

func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter is zero when either side is zero.
func (r *Rectangle) Perimeter() float64 {
	if r.width == 0 || r.height == 0 {
		return 0
	}
	return 2 * (r.width + r.height)
}

func (r *Rectangle) String() string {
	if !r.valid {
		return "Rectangle()"
	}
	return fmt.Sprintf("Rectangle(%s, %s)", numeric.Format(r.width), numeric.Format(r.height))
}

// Summary is the one-line form "[Rectangle] (id) x/y - width/height".
func (r *Rectangle) Summary() string {
	return fmt.Sprintf("[Rectangle] (%d) %d/%d - %s/%s",
		r.id, r.x, r.y, numeric.Format(r.width), numeric.Format(r.height))
}

// Square is a rectangle constructed with equal sides.
type Square struct {
	*Rectangle
}

// NewSquare builds a square of the given size, with the same validation as
// NewRectangle.
func NewSquare(size float64, opts ...Option) *Square {
	return &Square{Rectangle: NewRectangle(size, size, opts...)}
}

// Size is the side length; it is the height once the square was rotated
// or updated.
func (s *Square) Size() float64 {
	return s.height
}

// CharPrint draws the square filled with c. An empty c falls back to Print.
func (s *Square) CharPrint(c string) string {
	if c == "" {
		return s.Print()
	}
	return s.draw(c, 0)
}

func (s *Square) String() string {
	if !s.valid {
		return "Square()"
	}
	return fmt.Sprintf("Square(%s)", numeric.Format(s.width))
}

// Summary is the one-line form "[Square] (id) x/y - size".
func (s *Square) Summary() string {
	return fmt.Sprintf("[Square] (%d) %d/%d - %s", s.id, s.x, s.y, numeric.Format(s.height))
}

// BiggerOrEqual returns a when its area is at least b's, otherwise b.
func BiggerOrEqual(a, b Shape) Shape {
	if a.Area() >= b.Area() {
		return a
	}
	return b
}
