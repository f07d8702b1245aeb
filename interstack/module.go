package interstack

import (
	"github.com/reusee/dscope"
	"github.com/reusee/interstack/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Machine func(tape Tape, options ...Option) *VM

func (Module) Machine(
	logger logs.Logger,
) Machine {
	return func(tape Tape, options ...Option) *VM {
		return NewVM(tape, append([]Option{WithLogger(logger)}, options...)...)
	}
}
