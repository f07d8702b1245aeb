package interstack

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"unicode/utf8"
)

type OutputMode uint8

const (
	ModeNumeric OutputMode = iota
	ModeChar
)

func (m OutputMode) String() string {
	if m == ModeChar {
		return "char"
	}
	return "numeric"
}

// ParseOutputMode maps the command line mode flag; only "c" selects characters.
func ParseOutputMode(flag string) OutputMode {
	if flag == "c" {
		return ModeChar
	}
	return ModeNumeric
}

type DiagnosticsRoute uint8

const (
	// diagnostics share the program output stream
	DiagnosticsOutput DiagnosticsRoute = iota
	// diagnostics go to the logger
	DiagnosticsLog
)

func (d DiagnosticsRoute) String() string {
	if d == DiagnosticsLog {
		return "log"
	}
	return "output"
}

type Input struct {
	reader *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	reader, ok := r.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}
	return &Input{
		reader: reader,
	}
}

// ReadChecksum blocks for one line and reduces it to a byte.
// A final line without terminator is used as is; end of input yields 0.
func (i *Input) ReadChecksum() (byte, error) {
	line, err := i.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	return Checksum(line), nil
}

// Checksum sums the low byte of every character's code point, skipping CR and LF.
func Checksum(line string) (sum byte) {
	for _, r := range line {
		if r == '\r' || r == '\n' {
			continue
		}
		sum += byte(r)
	}
	return
}

type flusher interface {
	Flush() error
}

type Output struct {
	writer io.Writer
	mode   OutputMode
	buf    []byte
}

func NewOutput(w io.Writer, mode OutputMode) *Output {
	return &Output{
		writer: w,
		mode:   mode,
	}
}

func (o *Output) Mode() OutputMode {
	return o.mode
}

func (o *Output) Write(value byte) error {
	o.buf = o.buf[:0]
	if o.mode == ModeChar {
		o.buf = utf8.AppendRune(o.buf, rune(value))
	} else {
		o.buf = strconv.AppendUint(o.buf, uint64(value), 10)
	}
	return o.emit(o.buf)
}

// WriteLine writes a diagnostic line on the output stream.
func (o *Output) WriteLine(line string) error {
	o.buf = append(o.buf[:0], line...)
	o.buf = append(o.buf, '\n')
	return o.emit(o.buf)
}

func (o *Output) emit(data []byte) error {
	if _, err := o.writer.Write(data); err != nil {
		return err
	}
	if f, ok := o.writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}
