package interstack

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Tape []Instruction

// String renders the tape as canonical source, one symbol per instruction.
func (t Tape) String() string {
	var b strings.Builder
	b.Grow(len(t))
	for _, inst := range t {
		b.WriteRune(inst.Op.Symbol())
	}
	return b.String()
}

func (t Tape) Count(op Op) (n int) {
	for _, inst := range t {
		if inst.Op == op {
			n++
		}
	}
	return
}

type ListingEntry struct {
	Position int    `yaml:"pos"`
	Op       string `yaml:"op"`
	Symbol   string `yaml:"symbol"`
	Target   *int   `yaml:"target,omitempty"`
	Depth    int    `yaml:"depth,omitempty"`
}

// Listing annotates each instruction with its position and lexical loop depth.
func (t Tape) Listing() []ListingEntry {
	ret := make([]ListingEntry, 0, len(t))
	depth := 0
	for pos, inst := range t {
		if inst.Op == OpCloseLoop && depth > 0 {
			depth--
		}
		entry := ListingEntry{
			Position: pos,
			Op:       inst.Op.String(),
			Symbol:   string(inst.Op.Symbol()),
			Depth:    depth,
		}
		if inst.Op.HasTarget() {
			target := inst.Target
			entry.Target = &target
		}
		if inst.Op == OpOpenLoop {
			depth++
		}
		ret = append(ret, entry)
	}
	return ret
}

func DumpYAML(w io.Writer, tape Tape) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Length       int            `yaml:"length"`
		Instructions []ListingEntry `yaml:"instructions"`
	}{
		Length:       len(tape),
		Instructions: tape.Listing(),
	}); err != nil {
		return err
	}
	return enc.Close()
}
