package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/interstack/cmds"
	"github.com/reusee/interstack/configs"
	"github.com/reusee/interstack/debugs"
	"github.com/reusee/interstack/interstack"
	"github.com/reusee/interstack/logs"
	"github.com/reusee/interstack/modes"
	"github.com/reusee/interstack/stackconfigs"
)

var (
	dumpTape     = cmds.Switch("-dump", "print the compiled tape as YAML and exit")
	tapMachine   = cmds.Switch("-tap", "open a Starlark REPL on the halted machine")
	evalExpr     = cmds.Var[string]("-eval", "evaluate a Starlark expression on the halted machine")
	snapshotPath = cmds.Var[string]("-snapshot", "write a gob snapshot of the halted machine")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func main() {
	positionals, err := cmds.Parse(os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if len(positionals) == 0 {
		fatal(errors.New("no input file specified"))
	}
	sourcePath := positionals[0]
	var modeFlag string
	if len(positionals) > 1 {
		modeFlag = positionals[1]
	}

	tape, err := compileFile(sourcePath)
	if err != nil {
		fatal(err)
	}

	if *dumpTape {
		if err := interstack.DumpYAML(os.Stdout, tape); err != nil {
			fatal(wrap(err))
		}
		return
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() stackconfigs.ModeFlag {
			return stackconfigs.ModeFlag(modeFlag)
		},
	)

	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fatal(err)
		}
	})

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		machine interstack.Machine,
		mode interstack.OutputMode,
		route interstack.DiagnosticsRoute,
		tap debugs.Tap,
		eval debugs.Eval,
	) {
		ctx, _ := newSpan(context.Background(), "", "source", sourcePath)

		vm := machine(
			tape,
			interstack.WithInput(os.Stdin),
			interstack.WithOutput(os.Stdout, mode),
		)
		logger.InfoContext(ctx, "run",
			"instructions", len(tape),
			"mode", mode.String(),
			"diagnostics", route.String(),
		)
		if err := vm.Execute(ctx, route); err != nil {
			fatal(err)
		}

		if *snapshotPath != "" {
			if err := writeSnapshot(*snapshotPath, vm); err != nil {
				fatal(wrap(err))
			}
			logger.InfoContext(ctx, "snapshot written", "path", *snapshotPath)
		}

		if *evalExpr != "" {
			result, err := eval(ctx, *evalExpr, vm)
			if err != nil {
				fatal(err)
			}
			fmt.Fprintln(os.Stderr, result)
		}

		if *tapMachine {
			tap(ctx, sourcePath, vm)
		}
	})
}

func compileFile(path string) (interstack.Tape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()
	return interstack.Compile(path, f)
}

func writeSnapshot(path string, vm *interstack.VM) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := vm.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(1)
}
