package project

import (
	"regexp"
	"strings"
)

// DefaultMainClass is used when the module name yields no class segments.
const DefaultMainClass = "MainClass"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	underscoreRun   = regexp.MustCompile(`_+`)
)

// DeriveModuleName derives a module identifier from a validated project
// name: every character outside [A-Za-z0-9] becomes an underscore, runs of
// underscores collapse to one, the result is lower-cased and stripped of
// leading/trailing underscores.
func DeriveModuleName(projectName string) string {
	s := nonAlphanumeric.ReplaceAllString(projectName, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	return strings.Trim(s, "_")
}

// DeriveClassName derives a class identifier from a module identifier by
// capitalizing each underscore-separated segment and concatenating.
// Falls back to DefaultMainClass when no segments remain.
func DeriveClassName(moduleName string) string {
	var b strings.Builder
	for _, seg := range strings.Split(moduleName, "_") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(strings.ToLower(seg[1:]))
	}
	if b.Len() == 0 {
		return DefaultMainClass
	}
	return b.String()
}
