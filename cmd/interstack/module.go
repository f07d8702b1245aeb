package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/interstack/debugs"
	"github.com/reusee/interstack/interstack"
	"github.com/reusee/interstack/stackconfigs"
)

type Module struct {
	dscope.Module
	Interstack interstack.Module
	Configs    stackconfigs.Module
	Debugs     debugs.Module
}
