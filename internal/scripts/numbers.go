package scripts

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/numeric"
)

// maxExactFactorial bounds --exact input so a typo cannot run for minutes.
const maxExactFactorial = 5000

func (s *set) factorial(ctx context.Context, in domain.Input) error {
	arg, ok := in.Arg(0)
	if !ok {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgNaN)
		return err
	}

	n := numeric.Parse(arg)
	if s.Exact && !math.IsNaN(n) && n >= 0 && n == math.Trunc(n) {
		if n > maxExactFactorial {
			return fmt.Errorf("factorial: exact mode is limited to n <= %d", maxExactFactorial)
		}
		result, err := numeric.FactorialExact(int64(n))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.Stdout, result.String())
		return err
	}

	_, err := fmt.Fprintln(in.Stdout, numeric.Format(numeric.Factorial(n)))
	return err
}

func (s *set) secondBiggest(ctx context.Context, in domain.Input) error {
	if len(in.Args) < 2 {
		_, err := fmt.Fprintln(in.Stdout, 0)
		return err
	}
	nums := make([]float64, len(in.Args))
	for i, a := range in.Args {
		nums[i] = numeric.Parse(a)
	}
	_, err := fmt.Fprintln(in.Stdout, in.Args[numeric.SecondBiggestIndex(nums)])
	return err
}

func (s *set) toInteger(ctx context.Context, in domain.Input) error {
	arg, ok := in.Arg(0)
	if !ok || !numeric.IsNumber(arg) {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgNotANumber)
		return err
	}
	_, err := fmt.Fprintf(in.Stdout, "My number: %s\n", arg)
	return err
}

func (s *set) square(ctx context.Context, in domain.Input) error {
	arg, ok := in.Arg(0)
	if !ok {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgMissingSize)
		return err
	}
	rows, cols, ok := numeric.SquareSize(numeric.Parse(arg))
	if !ok {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgMissingSize)
		return err
	}
	return numeric.WriteSquare(in.Stdout, rows, cols, domain.DefaultFill)
}

func (s *set) add(ctx context.Context, in domain.Input) error {
	if len(in.Args) < 2 {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgNaN)
		return err
	}
	_, err := fmt.Fprintln(in.Stdout, numeric.Format(numeric.Add(in.Args[0], in.Args[1])))
	return err
}

func (s *set) peak(ctx context.Context, in domain.Input) error {
	list := make([]int, 0, len(in.Args))
	for _, a := range in.Args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("peak: %q is not an integer", a)
		}
		list = append(list, n)
	}

	p, ok := numeric.FindPeak(list)
	if !ok {
		_, err := fmt.Fprintln(in.Stdout, domain.MsgNone)
		return err
	}
	_, err := fmt.Fprintln(in.Stdout, p)
	return err
}
