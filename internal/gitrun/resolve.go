package gitrun

import (
	"os"
	"path/filepath"
)

// Workdir is the resolved directory git commands will run in, together with
// where the value came from. ProcessDir is always the process's own working
// directory, kept for diagnostics.
type Workdir struct {
	Dir        string
	Source     string
	ProcessDir string
}

// ResolveWorkdir picks the directory to analyze. An explicit argument wins;
// otherwise the process working directory is used. Resolution never fails:
// when even os.Getwd errors the current directory "." is assumed.
func ResolveWorkdir(arg string) Workdir {
	processDir, err := os.Getwd()
	if err != nil {
		processDir = "."
	}
	if arg != "" {
		dir := arg
		if abs, err := filepath.Abs(arg); err == nil {
			dir = abs
		}
		return Workdir{Dir: dir, Source: "argument", ProcessDir: processDir}
	}
	return Workdir{Dir: processDir, Source: "process", ProcessDir: processDir}
}
