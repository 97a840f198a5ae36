package templates

import (
	"embed"
	"io/fs"
)

// Template trees are embedded verbatim: files and path segments carry the
// literal {{...}} placeholder tokens that the materialization pipeline
// resolves. No template engine is involved.
//
//go:embed all:minimal all:standard
var templatesFS embed.FS

// FS returns the filesystem rooted at the named embedded template.
func FS(name string) (fs.FS, error) {
	t, err := Get(name)
	if err != nil {
		return nil, err
	}
	return fs.Sub(templatesFS, t.Name)
}

// Files returns the relative paths of all files in the named template.
func Files(name string) ([]string, error) {
	fsys, err := FS(name)
	if err != nil {
		return nil, err
	}

	var files []string
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
