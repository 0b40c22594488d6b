package shape

import (
	"fmt"
	"math"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/numeric"
)

// attrs is the editable state of a shape. Values are float64 so positional
// and keyed updates can share one representation.
type attrs struct {
	id, width, height, x, y float64
}

func (r *Rectangle) attrs() attrs {
	return attrs{
		id:     float64(r.id),
		width:  r.width,
		height: r.height,
		x:      float64(r.x),
		y:      float64(r.y),
	}
}

// apply validates next and commits it. Dimensions are only checked when they
// change, so an attribute-less rectangle can still be renumbered or moved.
func (r *Rectangle) apply(next attrs) error {
	if next.id != math.Trunc(next.id) {
		return fmt.Errorf("%w: id must be an integer", domain.ErrInvalidShape)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"x", next.x}, {"y", next.y}} {
		if c.v != math.Trunc(c.v) || c.v < 0 {
			return fmt.Errorf("%w: %s must be an integer >= 0", domain.ErrInvalidShape, c.name)
		}
	}

	resized := next.width != r.width || next.height != r.height
	if resized && !validDimensions(next.width, next.height) {
		return fmt.Errorf("%w: %s x %s has no area", domain.ErrInvalidShape,
			numeric.Format(next.width), numeric.Format(next.height))
	}

	r.id = int(next.id)
	r.x, r.y = int(next.x), int(next.y)
	if resized {
		r.width, r.height, r.valid = next.width, next.height, true
	}
	return nil
}

// Update sets, in order, the id, width, height, x and y from args.
// Missing trailing values keep their current value; extra values are ignored.
// Nothing changes when the result would be invalid.
func (r *Rectangle) Update(args ...float64) error {
	next := r.attrs()
	fields := []*float64{&next.id, &next.width, &next.height, &next.x, &next.y}
	for i, v := range args {
		if i == len(fields) {
			break
		}
		*fields[i] = v
	}
	return r.apply(next)
}

// UpdateFields sets the attributes named in fields: id, width, height, x
// and y. Other keys are ignored.
func (r *Rectangle) UpdateFields(fields map[string]float64) error {
	next := r.attrs()
	targets := map[string]*float64{
		"id": &next.id, "width": &next.width, "height": &next.height,
		"x": &next.x, "y": &next.y,
	}
	for k, v := range fields {
		if p, ok := targets[k]; ok {
			*p = v
		}
	}
	return r.apply(next)
}

// ToMap returns the attributes keyed as UpdateFields expects them.
func (r *Rectangle) ToMap() map[string]any {
	return map[string]any{
		"id":     r.id,
		"width":  r.width,
		"height": r.height,
		"x":      r.x,
		"y":      r.y,
	}
}

// Update sets, in order, the id, size, x and y from args.
func (s *Square) Update(args ...float64) error {
	next := s.attrs()
	fields := []*float64{&next.id, &next.width, &next.x, &next.y}
	for i, v := range args {
		if i == len(fields) {
			break
		}
		*fields[i] = v
	}
	next.height = next.width
	return s.apply(next)
}

// UpdateFields sets the attributes named in fields: id, size, x and y.
// Other keys, width and height included, are ignored.
func (s *Square) UpdateFields(fields map[string]float64) error {
	next := s.attrs()
	targets := map[string]*float64{
		"id": &next.id, "size": &next.width, "x": &next.x, "y": &next.y,
	}
	for k, v := range fields {
		if p, ok := targets[k]; ok {
			*p = v
		}
	}
	next.height = next.width
	return s.apply(next)
}

// ToMap returns the attributes keyed as Square.UpdateFields expects them.
func (s *Square) ToMap() map[string]any {
	return map[string]any{
		"id":   s.id,
		"size": s.height,
		"x":    s.x,
		"y":    s.y,
	}
}
