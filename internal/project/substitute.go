package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sproutkit/cli/internal/output"
)

// TextExtensions is the allow-list of extensions whose content is rewritten.
var TextExtensions = map[string]bool{
	".py":   true,
	".md":   true,
	".txt":  true,
	".toml": true,
	".yml":  true,
	".yaml": true,
}

// SubstituteContent walks the target tree and replaces every placeholder
// token occurrence in the content of allow-listed files. Per-file failures
// (unreadable, not valid text, unwritable) are logged as warnings and do not
// abort the walk; templates may legitimately contain binary or unreadable
// files. Returns the number of files rewritten.
func SubstituteContent(target string, reps Replacements) (int, error) {
	substituted := 0
	err := filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !TextExtensions[filepath.Ext(p)] {
			return nil
		}

		if ok := substituteFile(p, reps); ok {
			substituted++
		}
		return nil
	})
	if err != nil {
		return substituted, fmt.Errorf("walking target tree: %w", err)
	}
	return substituted, nil
}

// substituteFile rewrites one file; reports whether its content changed.
func substituteFile(p string, reps Replacements) bool {
	content, err := os.ReadFile(p)
	if err != nil {
		output.Warn("could not process file", "path", p, "error", err)
		return false
	}

	if !utf8.Valid(content) {
		output.Warn("could not process file", "path", p, "error", "not valid UTF-8 text")
		return false
	}

	replaced := reps.Apply(string(content))
	if replaced == string(content) {
		return false
	}

	info, err := os.Stat(p)
	if err != nil {
		output.Warn("could not process file", "path", p, "error", err)
		return false
	}

	if err := os.WriteFile(p, []byte(replaced), info.Mode().Perm()); err != nil {
		output.Warn("could not process file", "path", p, "error", err)
		return false
	}

	return true
}
