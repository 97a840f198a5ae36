package project

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveModuleName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"demo-app", "demo_app"},
		{"my-project", "my_project"},
		{"my.module_2", "my_module_2"},
		{"My--Weird..Name", "my_weird_name"},
		{"a", "a"},
		{"UPPER", "upper"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveModuleName(tt.name), "project name %q", tt.name)
	}
}

func TestDeriveModuleNameShape(t *testing.T) {
	// For any name from the identifier grammar the result contains only
	// lowercase alphanumerics and single underscores, with no leading or
	// trailing underscore.
	shape := regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

	for _, name := range []string{
		"a", "my-project", "my.module_2", "x__y", "A.B-C_D", "v2.0-beta",
	} {
		got := DeriveModuleName(name)
		assert.True(t, shape.MatchString(got), "DeriveModuleName(%q) = %q", name, got)
		assert.False(t, strings.Contains(got, "__"))
	}
}

func TestDeriveClassName(t *testing.T) {
	tests := []struct {
		module string
		want   string
	}{
		{"demo_app", "DemoApp"},
		{"my_module_2", "MyModule2"},
		{"single", "Single"},
		{"", "MainClass"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveClassName(tt.module), "module %q", tt.module)
	}
}

func TestDeriveScenario(t *testing.T) {
	// End-to-end derivation for the documented scenario.
	module := DeriveModuleName("demo-app")
	assert.Equal(t, "demo_app", module)
	assert.Equal(t, "DemoApp", DeriveClassName(module))
}
