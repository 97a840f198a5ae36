package project

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/sproutkit/cli/internal/errors"
)

// Target is the resolved destination directory for materialization.
type Target struct {
	// Path is the absolute destination path.
	Path string

	// InPlace is true when the destination is the current working
	// directory (confirmed by the operator).
	InPlace bool
}

// ResolveTarget validates and prepares the destination directory.
//
// path is the operator-supplied destination; when empty it defaults to
// ./<project-name>. When the destination resolves to the current working
// directory, confirmInPlace is consulted; it must return true or the run
// aborts with a precondition error. A destination that exists and is
// non-empty aborts; a missing destination is created with parents. A
// confirmed in-place run skips the emptiness check, since the working
// directory necessarily holds the template itself.
func ResolveTarget(path, projectName string, confirmInPlace func() bool) (*Target, error) {
	if path == "" {
		path = "./" + projectName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving target path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	if abs == cwd {
		if confirmInPlace == nil || !confirmInPlace() {
			return nil, oerrors.NewPreconditionError(
				"in-place setup declined",
				abs,
				"Specify a new directory for your project.",
			)
		}
		return &Target{Path: abs, InPlace: true}, nil
	}

	entries, err := os.ReadDir(abs)
	switch {
	case err == nil:
		if len(entries) > 0 {
			return nil, oerrors.NewPreconditionError(
				fmt.Sprintf("directory %s already exists and is not empty", path),
				abs,
				"Choose a different directory or remove the existing one.",
			)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", abs, err)
		}
	default:
		return nil, fmt.Errorf("checking target directory: %w", err)
	}

	return &Target{Path: abs}, nil
}
