package stackconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/interstack/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
