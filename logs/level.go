package logs

import (
	"log/slog"
	"strings"

	"github.com/reusee/interstack/cmds"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		desc := "set log level to " + name
		if l == slog.LevelWarn {
			desc += " (default)"
		}
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc(desc))
	}
}
