package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/interstack/interstack"
	"github.com/reusee/interstack/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a Starlark REPL on stdin over the machine state.
type Tap func(ctx context.Context, what string, vm *interstack.VM)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vm *interstack.VM) {
		logger.InfoContext(ctx, "tap: "+what,
			"position", vm.Position,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, Globals(vm))
	}
}

// Eval evaluates one Starlark expression over the machine state.
type Eval func(ctx context.Context, expr string, vm *interstack.VM) (string, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, vm *interstack.VM) (string, error) {
		thread := &starlark.Thread{
			Name: "eval",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "eval print", "msg", msg)
			},
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<eval>", expr, Globals(vm))
		if err != nil {
			return "", fmt.Errorf("eval %q: %w", expr, err)
		}
		if s, ok := value.(starlark.String); ok {
			return string(s), nil
		}
		return value.String(), nil
	}
}
