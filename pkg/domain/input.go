package domain

import (
	"io"
	"os"
)

// Input is everything a single script invocation may read or write.
// Scripts never touch os.Args or os.Stdout directly.
type Input struct {
	Args   []string
	Stdout io.Writer
	Stdin  io.Reader
}

// NewInput builds an Input, defaulting nil streams to the process streams.
func NewInput(args []string, stdout io.Writer, stdin io.Reader) Input {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return Input{Args: args, Stdout: stdout, Stdin: stdin}
}

// Arg returns the i-th positional argument and whether it was supplied.
func (in Input) Arg(i int) (string, bool) {
	if i < 0 || i >= len(in.Args) {
		return "", false
	}
	return in.Args[i], true
}
