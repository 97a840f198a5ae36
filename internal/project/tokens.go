// Package project implements template materialization: copying a template
// tree, renaming placeholder-bearing paths, and substituting placeholder
// tokens in file contents.
package project

import "strings"

// Placeholder tokens recognized in template file names and contents.
const (
	TokenProjectName        = "{{PROJECT_NAME}}"
	TokenModuleName         = "{{MODULE_NAME}}"
	TokenProjectDescription = "{{PROJECT_DESCRIPTION}}"
	TokenAuthorName         = "{{AUTHOR_NAME}}"
	TokenAuthorEmail        = "{{AUTHOR_EMAIL}}"
	TokenGitHubUsername     = "{{GITHUB_USERNAME}}"
	TokenMainClass          = "{{MAIN_CLASS}}"
)

// Metadata is the validated operator-supplied project information plus the
// identifiers derived from it. Built once by the wizard, read-only afterward.
type Metadata struct {
	// ProjectName matches the identifier grammar (see wizard.ValidateProjectName).
	ProjectName string

	// Description is free text; never empty (defaulted when blank).
	Description string

	// AuthorName is free text; never empty.
	AuthorName string

	// AuthorEmail is a validated address or the default.
	AuthorEmail string

	// GitHubUser is free text; never empty.
	GitHubUser string

	// ModuleName is derived from ProjectName (DeriveModuleName).
	ModuleName string

	// MainClass is derived from ModuleName (DeriveClassName).
	MainClass string
}

// NewMetadata fills the derived identifier fields from the project name.
func NewMetadata(name, description, author, email, github string) Metadata {
	module := DeriveModuleName(name)
	return Metadata{
		ProjectName: name,
		Description: description,
		AuthorName:  author,
		AuthorEmail: email,
		GitHubUser:  github,
		ModuleName:  module,
		MainClass:   DeriveClassName(module),
	}
}

// Replacement maps one placeholder token to its resolved value.
type Replacement struct {
	Token string
	Value string
}

// Replacements is the finalized replacement table: all seven tokens, built
// once per run, immutable thereafter. The tokens are disjoint literals, so
// application order does not affect the outcome.
type Replacements []Replacement

// Replacements builds the replacement table for this metadata.
func (m Metadata) Replacements() Replacements {
	return Replacements{
		{TokenProjectName, m.ProjectName},
		{TokenModuleName, m.ModuleName},
		{TokenProjectDescription, m.Description},
		{TokenAuthorName, m.AuthorName},
		{TokenAuthorEmail, m.AuthorEmail},
		{TokenGitHubUsername, m.GitHubUser},
		{TokenMainClass, m.MainClass},
	}
}

// Apply substitutes every table entry in s as a literal replacement.
func (r Replacements) Apply(s string) string {
	for _, rep := range r {
		s = strings.ReplaceAll(s, rep.Token, rep.Value)
	}
	return s
}

// ContainsToken reports whether s still contains any table token.
func (r Replacements) ContainsToken(s string) bool {
	for _, rep := range r {
		if strings.Contains(s, rep.Token) {
			return true
		}
	}
	return false
}
