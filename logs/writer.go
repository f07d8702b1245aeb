package logs

import (
	"io"
	"os"
)

// Writer receives terminal log records. Program output owns stdout.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
