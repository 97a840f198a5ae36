package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sproutkit/cli/internal/output"
)

// RenamePaths walks the target tree and renames every file and directory
// whose name contains a placeholder token. The walk is post-order (children
// before parents) so renaming a directory never invalidates a descendant
// path that is still to be visited. Returns the number of renames performed.
//
// A rename failure aborts the run: later phases would otherwise operate on
// paths that no longer reflect the replacement table.
func RenamePaths(target string, reps Replacements) (int, error) {
	var paths []string
	err := filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == target {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking target tree: %w", err)
	}

	// WalkDir is pre-order; visiting the collected paths in reverse yields
	// children before their parents.
	renamed := 0
	for i := len(paths) - 1; i >= 0; i-- {
		p := paths[i]
		base := filepath.Base(p)
		newBase := reps.Apply(base)
		if newBase == base {
			continue
		}

		newPath := filepath.Join(filepath.Dir(p), newBase)
		if err := os.Rename(p, newPath); err != nil {
			return renamed, fmt.Errorf("renaming %s: %w", p, err)
		}
		output.Debug("renamed", "from", base, "to", newBase)
		renamed++
	}

	return renamed, nil
}
