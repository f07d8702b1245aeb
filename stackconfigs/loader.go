package stackconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/interstack/cmds"
	"github.com/reusee/interstack/configs"
	"github.com/reusee/interstack/logs"
)

//go:embed schema.cue
var schema string

var configPaths = cmds.Collect[string]("-config", "load a CUE config file; may repeat")

var filenames = []string{
	"interstack.cue",
	".interstack.cue",
}

// SearchDirs lists the directories scanned for config files, most specific first.
type SearchDirs []string

func (Module) SearchDirs() (ret SearchDirs) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs SearchDirs,
) configs.Loader {

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	paths = append(paths, *configPaths...)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
