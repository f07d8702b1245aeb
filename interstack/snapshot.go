package interstack

import (
	"encoding/gob"
	"io"
)

type snapshot struct {
	Tape     Tape
	Position int
	Value    byte
	Stack    []byte
	Loops    []byte
	Halted   bool
}

// Snapshot encodes the tape and machine state. I/O endpoints are not included.
func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Tape:     v.Tape,
		Position: v.Position,
		Value:    v.Value,
		Stack:    v.Stack,
		Loops:    v.Loops,
		Halted:   v.Halted,
	}); err != nil {
		return err
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	var s snapshot
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return err
	}
	v.Tape = s.Tape
	v.Position = s.Position
	v.Value = s.Value
	v.Stack = s.Stack
	v.Loops = s.Loops
	v.Halted = s.Halted
	return nil
}
