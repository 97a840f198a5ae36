package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/sproutkit/cli/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "standard"

// registry is the internal registry of available templates.
var registry = map[string]Template{
	"minimal": {
		Name:        "minimal",
		Description: "Flat src layout - quick experiments",
		UseCase:     "Throwaway scripts, prototypes, teaching examples",
	},
	"standard": {
		Name:        "standard",
		Description: "src layout with tests, Makefile, license",
		UseCase:     "Packages meant to be published and maintained",
		Default:     true,
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := registry[name]
	if !ok {
		return Template{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", name),
			"",
			fmt.Sprintf("Valid templates: %s", strings.Join(Names(), ", ")),
		)
	}
	return t, nil
}

// List returns all available templates in stable order.
func List() []Template {
	return []Template{
		registry["minimal"],
		registry["standard"],
	}
}

// Names returns all template names in stable order.
func Names() []string {
	return []string{"minimal", "standard"}
}
