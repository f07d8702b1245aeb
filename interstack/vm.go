package interstack

import (
	"io"
	"log/slog"
	"os"
	"slices"
)

type VM struct {
	Tape     Tape
	Position int
	Value    byte
	Stack    []byte
	// remaining iterations, one entry per active loop
	Loops  []byte
	Halted bool

	Logger *slog.Logger

	input  *Input
	output *Output
}

type Option func(*VM)

func WithInput(r io.Reader) Option {
	return func(v *VM) {
		v.input = NewInput(r)
	}
}

func WithOutput(w io.Writer, mode OutputMode) Option {
	return func(v *VM) {
		v.output = NewOutput(w, mode)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *VM) {
		v.Logger = logger
	}
}

// NewVM prepares a machine at position 0.
// Input and output default to the process's stdin and stdout in numeric mode.
func NewVM(tape Tape, options ...Option) *VM {
	v := &VM{
		Tape: tape,
	}
	for _, option := range options {
		option(v)
	}
	if v.input == nil {
		v.input = NewInput(os.Stdin)
	}
	if v.output == nil {
		v.output = NewOutput(os.Stdout, ModeNumeric)
	}
	if v.Logger == nil {
		v.Logger = slog.New(slog.DiscardHandler)
	}
	return v
}

func (v *VM) Output() *Output {
	return v.output
}

func (v *VM) push(b byte) {
	v.Stack = append(v.Stack, b)
}

func (v *VM) pop() (byte, bool) {
	if len(v.Stack) == 0 {
		return 0, false
	}
	b := v.Stack[len(v.Stack)-1]
	v.Stack = v.Stack[:len(v.Stack)-1]
	return b, true
}

func (v *VM) peek() (byte, bool) {
	if len(v.Stack) == 0 {
		return 0, false
	}
	return v.Stack[len(v.Stack)-1], true
}

func (v *VM) popLoop() (byte, bool) {
	if len(v.Loops) == 0 {
		return 0, false
	}
	n := v.Loops[len(v.Loops)-1]
	v.Loops = v.Loops[:len(v.Loops)-1]
	return n, true
}

type State struct {
	Position int
	Value    byte
	Stack    []byte
	Loops    []byte
	Halted   bool
}

func (v *VM) State() State {
	return State{
		Position: v.Position,
		Value:    v.Value,
		Stack:    slices.Clone(v.Stack),
		Loops:    slices.Clone(v.Loops),
		Halted:   v.Halted,
	}
}
