package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetProjectRootDir resolves the repository root, preferring the
// PROJECT_ROOT_DIR override (set in the service container) and falling back
// to walking up from this source file until a go.mod is found.
func GetProjectRootDir() string {
	if dir, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok && dir != "" {
		return dir
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		wd, _ := os.Getwd()
		return wd
	}

	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			wd, _ := os.Getwd()
			return wd
		}
		dir = parent
	}
}
