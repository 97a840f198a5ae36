// Package templates provides the embedded project templates for sprout new.
package templates

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier (minimal, standard).
	Name string

	// Description explains the template's purpose.
	Description string

	// UseCase describes when to use this template.
	UseCase string

	// Default indicates the template used when --template is omitted.
	Default bool
}
