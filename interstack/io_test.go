package interstack

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestChecksum(t *testing.T) {
	for line, want := range map[string]byte{
		"":         0,
		"\n":       0,
		"A\r\n":    65,
		"AB":       131,
		"a\rb\n":   'a' + 'b',
		"ÿ":        255,
		"Ł":        0x41,
		"zzz\n":    110,
		"\r\r\n\n": 0,
	} {
		if got := Checksum(line); got != want {
			t.Fatalf("%q: got %v, want %v", line, got, want)
		}
	}
}

func TestInputLines(t *testing.T) {
	input := NewInput(strings.NewReader("A\r\nBB\nC"))
	for _, want := range []byte{65, 132, 67, 0, 0} {
		got, err := input.ReadChecksum()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	input = NewInput(iotest.ErrReader(errors.New("closed")))
	if _, err := input.ReadChecksum(); err == nil {
		t.Fatal("should error")
	}
}

func TestInputInstruction(t *testing.T) {
	res := run(t, "?!?!?!", ModeNumeric, "A\nhello\n")
	if res.output != "65"+"20"+"0" {
		t.Fatalf("got %q", res.output)
	}

	res = run(t, "?>!", ModeChar, "@\n")
	if res.output != "A" {
		t.Fatalf("got %q", res.output)
	}
}

func TestInputReadsOnlyOnDemand(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("x\ny\n"))
	vm := NewVM(CompileString("?"), WithInput(reader), WithOutput(new(bytes.Buffer), ModeNumeric))
	if err := vm.Execute(context.Background(), DiagnosticsOutput); err != nil {
		t.Fatal(err)
	}
	rest, _ := reader.ReadString('\n')
	if rest != "y\n" {
		t.Fatalf("got %q", rest)
	}
}

func TestInputErrorHalts(t *testing.T) {
	buf := new(bytes.Buffer)
	vm := NewVM(
		CompileString("?!"),
		WithInput(iotest.ErrReader(errors.New("closed"))),
		WithOutput(buf, ModeNumeric),
	)
	err := vm.Execute(context.Background(), DiagnosticsOutput)
	if err == nil || !strings.Contains(err.Error(), "read input: closed") {
		t.Fatalf("got %v", err)
	}
	if !vm.Halted || buf.Len() != 0 {
		t.Fatalf("got %v %q", vm.Halted, buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestOutputErrorHalts(t *testing.T) {
	vm := NewVM(CompileString("!!"), WithOutput(failWriter{}, ModeNumeric))
	err := vm.Execute(context.Background(), DiagnosticsOutput)
	if err == nil || !strings.Contains(err.Error(), "write output: broken pipe") {
		t.Fatalf("got %v", err)
	}
	if vm.Position != 0 {
		t.Fatalf("got %v", vm.Position)
	}
}

func TestOutputModes(t *testing.T) {
	buf := new(bytes.Buffer)
	out := NewOutput(buf, ModeNumeric)
	for _, b := range []byte{0, 7, 42, 255} {
		if err := out.Write(b); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != "0742255" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	out = NewOutput(buf, ModeChar)
	for _, b := range []byte{'h', 'i', 200} {
		if err := out.Write(b); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != "hiÈ" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestOutputFlushes(t *testing.T) {
	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)
	out := NewOutput(w, ModeNumeric)
	if err := out.Write(9); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "9" {
		t.Fatalf("got %q", buf.String())
	}
	if err := out.WriteLine("note"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "9note\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestParseOutputMode(t *testing.T) {
	for flag, want := range map[string]OutputMode{
		"c":    ModeChar,
		"":     ModeNumeric,
		"C":    ModeNumeric,
		"char": ModeNumeric,
		"n":    ModeNumeric,
	} {
		if got := ParseOutputMode(flag); got != want {
			t.Fatalf("%q: got %v", flag, got)
		}
	}
}
