package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// VerifyRendered makes a best-effort sanity pass over the materialized tree
// and returns human-readable findings. It checks that every rendered TOML
// and YAML file parses, and that no allow-listed file (name or content)
// still carries a placeholder token. Findings are advisory: a broken
// template should be visible without failing an otherwise complete run.
func VerifyRendered(target string, reps Replacements) []string {
	var findings []string

	walkErr := filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(target, p)
		if relErr != nil {
			rel = p
		}

		if reps.ContainsToken(d.Name()) {
			findings = append(findings, fmt.Sprintf("%s: unresolved placeholder in name", rel))
		}
		if d.IsDir() || !TextExtensions[filepath.Ext(p)] {
			return nil
		}

		content, readErr := os.ReadFile(p)
		if readErr != nil {
			findings = append(findings, fmt.Sprintf("%s: unreadable: %v", rel, readErr))
			return nil
		}

		if reps.ContainsToken(string(content)) {
			findings = append(findings, fmt.Sprintf("%s: unresolved placeholder in content", rel))
		}

		switch filepath.Ext(p) {
		case ".toml":
			var v map[string]any
			if err := toml.Unmarshal(content, &v); err != nil {
				findings = append(findings, fmt.Sprintf("%s: invalid TOML: %s", rel, firstLine(err)))
			}
		case ".yml", ".yaml":
			var v any
			if err := yaml.Unmarshal(content, &v); err != nil {
				findings = append(findings, fmt.Sprintf("%s: invalid YAML: %s", rel, firstLine(err)))
			}
		}

		return nil
	})
	if walkErr != nil {
		findings = append(findings, fmt.Sprintf("verification walk aborted: %v", walkErr))
	}

	return findings
}

// firstLine trims multi-line parser errors down to their first line.
func firstLine(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
