package stackconfigs

import (
	"github.com/reusee/interstack/cmds"
	"github.com/reusee/interstack/configs"
	"github.com/reusee/interstack/interstack"
)

// ModeFlag is the optional second positional argument; empty when absent.
type ModeFlag string

func (Module) ModeFlag() ModeFlag {
	return ""
}

var diagLog = cmds.Switch("-diag-log", "report stack underflow through the logger instead of stdout")

func (Module) OutputMode(
	flag ModeFlag,
	loader configs.Loader,
) interstack.OutputMode {
	if flag != "" {
		return interstack.ParseOutputMode(string(flag))
	}
	switch configs.First[string](loader, "output_mode") {
	case "char":
		return interstack.ModeChar
	}
	return interstack.ModeNumeric
}

// DiagnosticsRouteFlag is set by -diag-log.
type DiagnosticsRouteFlag bool

func (Module) DiagnosticsRouteFlag() DiagnosticsRouteFlag {
	return DiagnosticsRouteFlag(*diagLog)
}

func (Module) DiagnosticsRoute(
	flag DiagnosticsRouteFlag,
	loader configs.Loader,
) interstack.DiagnosticsRoute {
	if flag {
		return interstack.DiagnosticsLog
	}
	if configs.First[string](loader, "diagnostics") == "log" {
		return interstack.DiagnosticsLog
	}
	return interstack.DiagnosticsOutput
}
