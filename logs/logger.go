package logs

import (
	"log/slog"

	"github.com/reusee/interstack/modes"
	slogmulti "github.com/samber/slog-multi"
)

type Logger = *slog.Logger

// Logger writes to the terminal writer, or to the systemd journal when a
// production binary runs as a service.
func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	terminal := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminal}

	if mode == modes.ModeProduction && runningUnderSystemd() {
		journal, err := newJournalHandler()
		if err != nil {
			slog.New(terminal).Warn("new systemd journal handler", "error", err)
		} else {
			handlers = []slog.Handler{journal}
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}
