package interstack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

type loopFrame struct {
	start  int
	breaks []int
}

// resolver tracks open loops while compiling and backpatches their breaks.
type resolver struct {
	frames []loopFrame
}

func (r *resolver) open(start int) {
	r.frames = append(r.frames, loopFrame{
		start: start,
	})
}

func (r *resolver) close() (frame loopFrame, ok bool) {
	if len(r.frames) == 0 {
		return
	}
	frame = r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	return frame, true
}

func (r *resolver) addBreak(pos int) bool {
	if len(r.frames) == 0 {
		return false
	}
	frame := &r.frames[len(r.frames)-1]
	frame.breaks = append(frame.breaks, pos)
	return true
}

func (r *resolver) depth() int {
	return len(r.frames)
}

type compiler struct {
	tape  Tape
	loops resolver
}

func (c *compiler) emit(inst Instruction) int {
	c.tape = append(c.tape, inst)
	return len(c.tape) - 1
}

func (c *compiler) symbol(r rune) {
	op, ok := OpForSymbol(r)
	if !ok {
		return
	}

	switch op {

	case OpOpenLoop:
		c.loops.open(len(c.tape))
		c.emit(Instruction{Op: OpOpenLoop})

	case OpCloseLoop:
		frame, ok := c.loops.close()
		if !ok {
			return
		}
		end := len(c.tape)
		for _, pos := range frame.breaks {
			if c.tape[pos].Op == OpBreakLoop {
				c.tape[pos].Target = end
			}
		}
		c.emit(Instruction{
			Op:     OpCloseLoop,
			Target: frame.start,
		})

	case OpBreakLoop:
		if c.loops.depth() == 0 {
			return
		}
		pos := c.emit(Instruction{Op: OpBreakLoop})
		c.loops.addBreak(pos)

	default:
		c.emit(Instruction{Op: op})
	}
}

// Compile translates source into a tape in one pass.
// Characters outside the symbol table are comments; unbalanced delimiters are
// dropped rather than reported. The only error is a failure reading source.
func Compile(name string, source io.Reader) (Tape, error) {
	reader, ok := source.(io.RuneReader)
	if !ok {
		reader = bufio.NewReader(source)
	}
	c := new(compiler)
	for {
		r, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", name, err)
		}
		c.symbol(r)
	}
	return c.tape, nil
}

func CompileString(src string) Tape {
	c := new(compiler)
	for _, r := range src {
		c.symbol(r)
	}
	return c.tape
}
