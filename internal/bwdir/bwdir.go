// Package bwdir locates the root directory of the benchmark suite: the
// directory holding the frameworks/ tree that every project path is built
// under.
package bwdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvRoot overrides root discovery when set. CI and tests point it at a
// checkout that is not an ancestor of the working directory.
const EnvRoot = "BW_ROOT"

// Root returns the suite root: $BW_ROOT when set, otherwise the nearest
// ancestor of the working directory containing a frameworks/ subdirectory.
func Root() (string, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return rootFrom(cwd)
}

func rootFrom(dir string) (string, error) {
	for cur := dir; ; {
		info, err := os.Stat(filepath.Join(cur, "frameworks"))
		if err == nil && info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("no frameworks directory found above %s (set %s to override)", dir, EnvRoot)
		}
		cur = parent
	}
}
