package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects environment dependent behavior, such as the log sink.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

var modeNames = map[Mode]string{
	ModeProduction:  "production",
	ModeDevelopment: "development",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Module provides Mode and *testing.T to the scope.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

// ForTest marks the scope as development and exposes t to providers.
func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) T() *testing.T {
	return m.t
}

func (m Module) Mode() Mode {
	return m.mode
}
