package interstack

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/interstack/logs"
)

// Step executes the instruction at the current position.
// Underflow errors are recoverable; any other error halts the machine.
func (v *VM) Step() error {
	if v.Halted {
		return nil
	}
	if v.Position < 0 || v.Position >= len(v.Tape) {
		v.Halted = true
		return nil
	}

	pos := v.Position
	inst := v.Tape[pos]
	var err error

	switch inst.Op {

	case OpPush:
		v.push(v.Value)
		v.Value = 0

	case OpPop:
		value, ok := v.pop()
		if !ok {
			err = &UnderflowError{Op: OpPop, Position: pos}
		}
		v.Value = value

	case OpPeek:
		value, ok := v.peek()
		if !ok {
			err = &UnderflowError{Op: OpPeek, Position: pos}
		}
		v.Value = value

	case OpSwap:
		value, ok := v.pop()
		if !ok {
			err = &UnderflowError{Op: OpSwap, Position: pos}
		}
		v.push(v.Value)
		v.Value = value

	case OpSetValue:
		v.pop()
		v.push(v.Value)
		v.Value = 0

	case OpFlip:
		slices.Reverse(v.Stack)

	case OpSet0:
		v.Value = 0

	case OpSet65:
		v.Value = 65

	case OpInput:
		value, err := v.input.ReadChecksum()
		if err != nil {
			v.Halted = true
			return fmt.Errorf("read input: %w", err)
		}
		v.Value = value

	case OpOutput:
		if err := v.output.Write(v.Value); err != nil {
			v.Halted = true
			return fmt.Errorf("write output: %w", err)
		}

	case OpEnd:
		v.Halted = true
		return nil

	case OpDecrement:
		v.Value--

	case OpIncrement:
		v.Value++

	case OpAddTop:
		top, _ := v.pop()
		v.push(top + v.Value)
		v.Value = 0

	case OpOpenLoop:
		v.Loops = append(v.Loops, v.Value)

	case OpCloseLoop:
		if n, ok := v.popLoop(); ok && n > 0 {
			v.Loops = append(v.Loops, n-1)
			v.Position = inst.Target
		}

	case OpBreakLoop:
		v.popLoop()
		v.Position = inst.Target

	}

	v.Position++
	return err
}

// Run executes until the machine halts, yielding the position and error of
// every failed step. Returning false from yield halts the machine.
func (v *VM) Run(yield func(int, error) bool) {
	for !v.Halted {
		pos := v.Position
		if err := v.Step(); err != nil {
			if !yield(pos, err) {
				v.Halted = true
				return
			}
		}
	}
}

// Execute runs to completion, routing underflow diagnostics and returning the
// first error that stopped the machine.
func (v *VM) Execute(ctx context.Context, route DiagnosticsRoute) error {
	for pos, err := range v.Run {
		var underflow *UnderflowError
		if !errors.As(err, &underflow) {
			v.Logger.ErrorContext(ctx, "machine halted",
				"position", pos,
				"error", err,
			)
			return logs.WrapSpan(ctx, err)
		}
		if route == DiagnosticsLog {
			v.Logger.WarnContext(ctx, "stack underflow",
				"op", underflow.Op.String(),
				"position", pos,
			)
			continue
		}
		if err := v.output.WriteLine(underflow.Error()); err != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("write diagnostic: %w", err))
		}
	}
	v.Logger.DebugContext(ctx, "machine halted",
		"position", v.Position,
		"value", v.Value,
		"stack", len(v.Stack),
	)
	return nil
}
