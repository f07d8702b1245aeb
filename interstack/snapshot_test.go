package interstack

import (
	"bytes"
	"slices"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	out := new(bytes.Buffer)
	vm := NewVM(CompileString(">>+>>>(<!)~"), WithOutput(out, ModeNumeric))
	for range 10 {
		if err := vm.Step(); err != nil {
			t.Fatal(err)
		}
	}

	buf := new(bytes.Buffer)
	if err := vm.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	restoredOut := new(bytes.Buffer)
	restored := NewVM(nil, WithOutput(restoredOut, ModeNumeric))
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}

	want := vm.State()
	got := restored.State()
	if got.Position != want.Position || got.Value != want.Value || got.Halted != want.Halted ||
		!slices.Equal(got.Stack, want.Stack) || !slices.Equal(got.Loops, want.Loops) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !slices.Equal(restored.Tape, vm.Tape) {
		t.Fatalf("got %v", restored.Tape)
	}

	// both machines finish identically
	for range vm.Run {
	}
	for range restored.Run {
	}
	if out.String() != "210255" || restoredOut.String() != "10255" {
		t.Fatalf("got %q %q", out.String(), restoredOut.String())
	}
	if !slices.Equal(vm.Stack, restored.Stack) {
		t.Fatalf("got %v %v", vm.Stack, restored.Stack)
	}
}

func TestRestoreInvalid(t *testing.T) {
	vm := NewVM(nil)
	if err := vm.Restore(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Fatal("should error")
	}
}
