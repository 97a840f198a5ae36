package project

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/sproutkit/cli/internal/output"
)

// ManifestName is the template manifest file, excluded from the copy the
// same way the original setup script excludes itself.
const ManifestName = "sprout.yaml"

// DefaultExcludes are entry names skipped while copying a template tree.
var DefaultExcludes = []string{ManifestName, ".git", "__pycache__"}

// placeholderModuleDir is the literally-named template module directory
// under src/ that FixSrcLayout repositions.
const placeholderModuleDir = TokenModuleName

// Materializer copies a template tree into a target directory.
// Exactly one of TemplateRoot (on-disk template) or TemplateFS (embedded
// template) must be set.
type Materializer struct {
	// TemplateRoot is the on-disk template root directory.
	TemplateRoot string

	// TemplateFS is an embedded template filesystem rooted at the
	// template's top level.
	TemplateFS fs.FS

	// Excludes are entry names skipped during the copy.
	// Nil means DefaultExcludes.
	Excludes []string
}

func (m *Materializer) excluded(name string) bool {
	excludes := m.Excludes
	if excludes == nil {
		excludes = DefaultExcludes
	}
	for _, e := range excludes {
		if name == e {
			return true
		}
	}
	return false
}

// Materialize copies the template into target. When target is the template
// root itself (in-place run) the copy is skipped.
func (m *Materializer) Materialize(target string) error {
	if m.TemplateFS != nil {
		return m.copyFS(target)
	}

	absTemplate, err := filepath.Abs(m.TemplateRoot)
	if err != nil {
		return fmt.Errorf("resolving template root: %w", err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving target: %w", err)
	}

	if absTarget == absTemplate {
		output.Debug("in-place run, skipping template copy", "target", absTarget)
		return nil
	}

	return m.copyDir(absTemplate, absTarget)
}

// copyDir recursively copies src into dst, skipping excluded entries.
func (m *Materializer) copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	for _, entry := range entries {
		if m.excluded(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := m.copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// copyFS copies the embedded template filesystem into dst.
func (m *Materializer) copyFS(dst string) error {
	return fs.WalkDir(m.TemplateFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return os.MkdirAll(dst, 0o755)
		}
		if m.excluded(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		dstPath := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}

		content, err := fs.ReadFile(m.TemplateFS, p)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", p, err)
		}
		return os.WriteFile(dstPath, content, 0o644)
	})
}

// FixSrcLayout ensures <target>/src/<moduleName> exists. When it does not,
// the template's placeholder module directory is copied into it and the
// placeholder directory removed. Idempotent: an existing module directory
// short-circuits, so re-running on an already-fixed layout is a no-op.
// Templates without a src/ placeholder directory are left untouched.
func (m *Materializer) FixSrcLayout(target, moduleName string) error {
	moduleDir := filepath.Join(target, "src", moduleName)
	if _, err := os.Stat(moduleDir); err == nil {
		output.Debug("module directory already in place", "dir", moduleDir)
		return nil
	}

	if m.TemplateFS != nil {
		placeholder := path.Join("src", placeholderModuleDir)
		if _, err := fs.Stat(m.TemplateFS, placeholder); err != nil {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(moduleDir), 0o755); err != nil {
			return fmt.Errorf("creating src directory: %w", err)
		}
		sub, err := fs.Sub(m.TemplateFS, placeholder)
		if err != nil {
			return fmt.Errorf("opening template module directory: %w", err)
		}
		if err := os.CopyFS(moduleDir, sub); err != nil {
			return fmt.Errorf("copying module directory: %w", err)
		}
	} else {
		placeholder := filepath.Join(m.TemplateRoot, "src", placeholderModuleDir)
		if _, err := os.Stat(placeholder); err != nil {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(moduleDir), 0o755); err != nil {
			return fmt.Errorf("creating src directory: %w", err)
		}
		copier := &Materializer{TemplateRoot: m.TemplateRoot, Excludes: m.Excludes}
		if err := copier.copyDir(placeholder, moduleDir); err != nil {
			return fmt.Errorf("copying module directory: %w", err)
		}
	}

	// Drop the placeholder directory copied alongside the rest of the tree.
	stale := filepath.Join(target, "src", placeholderModuleDir)
	if _, err := os.Stat(stale); err == nil {
		if err := os.RemoveAll(stale); err != nil {
			return fmt.Errorf("removing placeholder module directory: %w", err)
		}
	}

	return nil
}

// copyFile copies a regular file preserving its permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", dst, err)
	}

	return out.Close()
}
