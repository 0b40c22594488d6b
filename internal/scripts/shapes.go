package scripts

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/numeric"
	"github.com/aretw0/drills/pkg/shape"
)

func (s *set) rectangle(ctx context.Context, in domain.Input) error {
	w, _ := in.Arg(0)
	h, _ := in.Arg(1)

	var rest []string
	if len(in.Args) > 2 {
		rest = in.Args[2:]
	}
	var opts []shape.Option
	if x, y, ok := offset(rest); ok {
		opts = append(opts, shape.At(x, y))
		rest = rest[2:]
	}

	rect := shape.NewRectangle(numeric.Parse(w), numeric.Parse(h), opts...)
	s.Logger.Debug("rectangle built", "valid", rect.Valid(), "rect", rect.Summary())

	ops := rest
	if len(ops) == 0 {
		ops = []string{"print"}
	}
	for _, op := range ops {
		if err := applyOp(in, rect, op); err != nil {
			return err
		}
	}
	return nil
}

// offset reads a leading "X Y" pair of non-negative integers from args.
func offset(args []string) (x, y int, ok bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	fx, fy := numeric.Parse(args[0]), numeric.Parse(args[1])
	if args[0] == "" || args[1] == "" || fx != float64(int(fx)) || fy != float64(int(fy)) || fx < 0 || fy < 0 {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

func applyOp(in domain.Input, sh shape.Shape, op string) error {
	if sym, ok := strings.CutPrefix(op, "symbol="); ok {
		sh.SetSymbol(sym)
		return nil
	}

	var err error
	switch op {
	case "print":
		_, err = fmt.Fprintln(in.Stdout, sh.Print())
	case "display":
		_, err = fmt.Fprintln(in.Stdout, sh.Display())
	case "rotate":
		sh.Rotate()
	case "double":
		sh.Double()
	case "area":
		_, err = fmt.Fprintln(in.Stdout, numeric.Format(sh.Area()))
	case "perimeter":
		_, err = fmt.Fprintln(in.Stdout, numeric.Format(sh.Perimeter()))
	case "describe":
		_, err = fmt.Fprintln(in.Stdout, sh)
	case "summary":
		_, err = fmt.Fprintln(in.Stdout, sh.Summary())
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return err
}

func (s *set) squareShape(ctx context.Context, in domain.Input) error {
	size, _ := in.Arg(0)
	fill, _ := in.Arg(1)
	sq := shape.NewSquare(numeric.Parse(size))
	_, err := fmt.Fprintln(in.Stdout, sq.CharPrint(fill))
	return err
}

// shapes lists the shapes saved in a directory, or adds one:
//
//	shapes DIR
//	shapes DIR rectangle W H [X Y]
//	shapes DIR square SIZE [X Y]
func (s *set) shapes(ctx context.Context, in domain.Input) error {
	dir, err := required(in, 0, "dir")
	if err != nil {
		return err
	}
	rects, err := shape.LoadRectangles(dir)
	if err != nil {
		return fail(in.Stdout, err)
	}
	squares, err := shape.LoadSquares(dir)
	if err != nil {
		return fail(in.Stdout, err)
	}

	kind, ok := in.Arg(1)
	if !ok {
		for _, r := range rects {
			if _, err := fmt.Fprintln(in.Stdout, r.Summary()); err != nil {
				return err
			}
		}
		for _, sq := range squares {
			if _, err := fmt.Fprintln(in.Stdout, sq.Summary()); err != nil {
				return err
			}
		}
		return nil
	}

	id := nextSavedID(rects, squares)
	var added shape.Shape
	switch kind {
	case "rectangle":
		w, err := required(in, 2, "width")
		if err != nil {
			return err
		}
		h, err := required(in, 3, "height")
		if err != nil {
			return err
		}
		r := shape.NewRectangle(numeric.Parse(w), numeric.Parse(h), placed(in.Args[4:], id)...)
		if !r.Valid() {
			return fmt.Errorf("%w: %s x %s has no area", domain.ErrInvalidShape, w, h)
		}
		rects = append(rects, r)
		if err := shape.SaveRectangles(dir, rects); err != nil {
			return fail(in.Stdout, err)
		}
		added = r
	case "square":
		size, err := required(in, 2, "size")
		if err != nil {
			return err
		}
		sq := shape.NewSquare(numeric.Parse(size), placed(in.Args[3:], id)...)
		if !sq.Valid() {
			return fmt.Errorf("%w: size %s has no area", domain.ErrInvalidShape, size)
		}
		squares = append(squares, sq)
		if err := shape.SaveSquares(dir, squares); err != nil {
			return fail(in.Stdout, err)
		}
		added = sq
	default:
		return fmt.Errorf("unknown shape %q", kind)
	}

	s.Logger.Debug("shape saved", "dir", dir, "shape", added.Summary())
	_, err = fmt.Fprintln(in.Stdout, added.Summary())
	return err
}

func placed(args []string, id int) []shape.Option {
	opts := []shape.Option{shape.WithID(id)}
	if x, y, ok := offset(args); ok {
		opts = append(opts, shape.At(x, y))
	}
	return opts
}

// nextSavedID is one past the largest id on disk, so a new shape never
// reuses a saved id across runs.
func nextSavedID(rects []*shape.Rectangle, squares []*shape.Square) int {
	last := 0
	for _, r := range rects {
		last = max(last, r.ID())
	}
	for _, sq := range squares {
		last = max(last, sq.ID())
	}
	return last + 1
}
