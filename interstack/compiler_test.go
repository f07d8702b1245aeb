package interstack

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCompileSymbols(t *testing.T) {
	tape := CompileString("+^@%_~*#?!.<>&")
	want := []Op{
		OpPush, OpPop, OpPeek, OpSwap, OpSetValue, OpFlip, OpSet0,
		OpSet65, OpInput, OpOutput, OpEnd, OpDecrement, OpIncrement, OpAddTop,
	}
	if len(tape) != len(want) {
		t.Fatalf("got %v", tape)
	}
	for i, op := range want {
		if tape[i].Op != op {
			t.Fatalf("%d: got %v, want %v", i, tape[i].Op, op)
		}
	}
}

func TestCompileIgnoresComments(t *testing.T) {
	tape := CompileString("push one: +\n inc > \t and print !\r\nλ")
	if got := tape.String(); got != "+>!" {
		t.Fatalf("got %q", got)
	}
}

func TestCompileLoopTargets(t *testing.T) {
	// 0:( 1:> 2:( 3:; 4:< 5:) 6:; 7:)
	tape := CompileString("(>(;<);)")
	want := Tape{
		{Op: OpOpenLoop},
		{Op: OpIncrement},
		{Op: OpOpenLoop},
		{Op: OpBreakLoop, Target: 5},
		{Op: OpDecrement},
		{Op: OpCloseLoop, Target: 2},
		{Op: OpBreakLoop, Target: 7},
		{Op: OpCloseLoop, Target: 0},
	}
	if !slices.Equal(tape, want) {
		t.Fatalf("got %v", tape)
	}
}

func TestCompileMultipleBreaks(t *testing.T) {
	tape := CompileString("(;;>;)")
	for _, pos := range []int{1, 2, 4} {
		if tape[pos].Op != OpBreakLoop || tape[pos].Target != 5 {
			t.Fatalf("%d: got %v", pos, tape[pos])
		}
	}
}

func TestCompileUnmatched(t *testing.T) {
	t.Run("close without open", func(t *testing.T) {
		tape := CompileString(")>)")
		if got := tape.String(); got != ">" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("break outside loop", func(t *testing.T) {
		tape := CompileString(";>;")
		if got := tape.String(); got != ">" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("open without close", func(t *testing.T) {
		tape := CompileString("((>;)")
		// the outer loop stays open, its OpenLoop inert
		want := Tape{
			{Op: OpOpenLoop},
			{Op: OpOpenLoop},
			{Op: OpIncrement},
			{Op: OpBreakLoop, Target: 4},
			{Op: OpCloseLoop, Target: 1},
		}
		if !slices.Equal(tape, want) {
			t.Fatalf("got %v", tape)
		}
	})

	t.Run("break in unclosed loop", func(t *testing.T) {
		tape := CompileString("(>;")
		if tape[2].Op != OpBreakLoop || tape[2].Target != 0 {
			t.Fatalf("got %v", tape[2])
		}
	})
}

func TestCompileCounts(t *testing.T) {
	for _, src := range []string{
		"",
		"(;)",
		"((;);(;;))",
		"(()())(;)",
		")(;(;)",
	} {
		tape := CompileString(src)
		opens := strings.Count(src, "(")
		if n := tape.Count(OpOpenLoop); n != opens {
			t.Fatalf("%q: got %d opens, want %d", src, n, opens)
		}

		// count matched pairs and breaks inside some loop
		depth, pairs, breaks := 0, 0, 0
		for _, r := range src {
			switch r {
			case '(':
				depth++
			case ')':
				if depth > 0 {
					depth--
					pairs++
				}
			case ';':
				if depth > 0 {
					breaks++
				}
			}
		}
		if n := tape.Count(OpCloseLoop); n != pairs {
			t.Fatalf("%q: got %d closes, want %d", src, n, pairs)
		}
		if n := tape.Count(OpBreakLoop); n != breaks {
			t.Fatalf("%q: got %d breaks, want %d", src, n, breaks)
		}
	}
}

func TestBreakTargetsEnclosingClose(t *testing.T) {
	src := "(>(;>(<;)>;)(;);)"
	tape := CompileString(src)

	// recompute enclosing loops with a stack of positions
	var opens []int
	closeOf := make(map[int]int)
	enclosing := make(map[int]int)
	for pos, inst := range tape {
		switch inst.Op {
		case OpOpenLoop:
			opens = append(opens, pos)
		case OpBreakLoop:
			enclosing[pos] = opens[len(opens)-1]
		case OpCloseLoop:
			start := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			closeOf[start] = pos
			if inst.Target != start {
				t.Fatalf("close at %d: got target %d, want %d", pos, inst.Target, start)
			}
		}
	}
	for pos, start := range enclosing {
		if tape[pos].Target != closeOf[start] {
			t.Fatalf("break at %d: got target %d, want %d", pos, tape[pos].Target, closeOf[start])
		}
	}
}

func TestCompileReader(t *testing.T) {
	tape, err := Compile("test", strings.NewReader(">>>(<!)\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tape, CompileString(">>>(<!)")) {
		t.Fatalf("got %v", tape)
	}

	_, err = Compile("broken.is", iotest.ErrReader(errors.New("disk")))
	if err == nil || !strings.Contains(err.Error(), "broken.is") {
		t.Fatalf("got %v", err)
	}
}

func TestTapeRoundTrip(t *testing.T) {
	for _, src := range []string{
		"+^@%_~*#?!.<>&",
		">>>(<!)",
		"(>(;<);)",
		"((;);(;;))",
	} {
		tape := CompileString(src)
		if got := tape.String(); got != src {
			t.Fatalf("got %q, want %q", got, src)
		}
		if !slices.Equal(CompileString(tape.String()), tape) {
			t.Fatalf("%q: recompiled tape differs", src)
		}
	}
}
