package interstack

import "strconv"

type Op uint8

const (
	OpPush Op = iota
	OpPop
	OpPeek
	OpSwap
	OpSetValue
	OpFlip
	OpSet0
	OpSet65
	OpInput
	OpOutput
	OpEnd
	OpDecrement
	OpIncrement
	OpAddTop
	OpOpenLoop
	OpCloseLoop
	OpBreakLoop

	numOps
)

var opNames = [numOps]string{
	OpPush:      "Push",
	OpPop:       "Pop",
	OpPeek:      "Peek",
	OpSwap:      "Swap",
	OpSetValue:  "SetValue",
	OpFlip:      "Flip",
	OpSet0:      "Set0",
	OpSet65:     "Set65",
	OpInput:     "Input",
	OpOutput:    "Output",
	OpEnd:       "End",
	OpDecrement: "Decrement",
	OpIncrement: "Increment",
	OpAddTop:    "AddTop",
	OpOpenLoop:  "OpenLoop",
	OpCloseLoop: "CloseLoop",
	OpBreakLoop: "BreakLoop",
}

var opSymbols = [numOps]rune{
	OpPush:      '+',
	OpPop:       '^',
	OpPeek:      '@',
	OpSwap:      '%',
	OpSetValue:  '_',
	OpFlip:      '~',
	OpSet0:      '*',
	OpSet65:     '#',
	OpInput:     '?',
	OpOutput:    '!',
	OpEnd:       '.',
	OpDecrement: '<',
	OpIncrement: '>',
	OpAddTop:    '&',
	OpOpenLoop:  '(',
	OpCloseLoop: ')',
	OpBreakLoop: ';',
}

var symbolOps = func() map[rune]Op {
	ret := make(map[rune]Op, numOps)
	for op, symbol := range opSymbols {
		ret[symbol] = Op(op)
	}
	return ret
}()

// OpForSymbol returns the operation a source character denotes.
func OpForSymbol(r rune) (Op, bool) {
	op, ok := symbolOps[r]
	return op, ok
}

func (o Op) String() string {
	if o >= numOps {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// Symbol is the source character of the operation.
func (o Op) Symbol() rune {
	if o >= numOps {
		return 0
	}
	return opSymbols[o]
}

func (o Op) HasTarget() bool {
	return o == OpCloseLoop || o == OpBreakLoop
}

type Instruction struct {
	Op Op
	// tape position; used by OpCloseLoop and OpBreakLoop only
	Target int
}

func (i Instruction) String() string {
	if i.Op.HasTarget() {
		return i.Op.String() + "(" + strconv.Itoa(i.Target) + ")"
	}
	return i.Op.String()
}
