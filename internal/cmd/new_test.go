package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/sproutkit/cli/internal/errors"
)

// writeTestTemplate creates an on-disk template with placeholder tokens in
// both path segments and file contents.
func writeTestTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"sprout.yaml":    "name: test-template\n",
		"pyproject.toml": "[project]\nname = \"{{PROJECT_NAME}}\"\ndescription = \"{{PROJECT_DESCRIPTION}}\"\nauthors = [{name = \"{{AUTHOR_NAME}}\", email = \"{{AUTHOR_EMAIL}}\"}]\n",
		"README.md":      "# {{PROJECT_NAME}}\n\nBy {{GITHUB_USERNAME}}.\n",
		"src/{{MODULE_NAME}}/__init__.py": "",
		"src/{{MODULE_NAME}}/main.py":     "class {{MAIN_CLASS}}:\n    pass\n",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// runNewCmd executes the new command with the given args and stdin lines.
func runNewCmd(t *testing.T, stdin string, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cmd := NewNewCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out, err
}

func TestNewCmdCreatesProjectFromTemplateDir(t *testing.T) {
	template := writeTestTemplate(t)
	target := filepath.Join(t.TempDir(), "demo-app")

	// description, author, email, github, create confirmation
	stdin := "\nAda Lovelace\nada@example.com\nadal\ny\n"
	out, err := runNewCmd(t, stdin,
		"demo-app",
		"--template-dir", template,
		"--dir", target,
		"--skip-venv",
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "created")

	// Paths renamed, placeholder directory gone.
	assert.DirExists(t, filepath.Join(target, "src", "demo_app"))
	assert.NoDirExists(t, filepath.Join(target, "src", "{{MODULE_NAME}}"))

	// Manifest excluded from the copy.
	assert.NoFileExists(t, filepath.Join(target, "sprout.yaml"))

	pyproject, err := os.ReadFile(filepath.Join(target, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `name = "demo-app"`)
	assert.Contains(t, string(pyproject), "Ada Lovelace")
	assert.NotContains(t, string(pyproject), "{{")

	mainPy, err := os.ReadFile(filepath.Join(target, "src", "demo_app", "main.py"))
	require.NoError(t, err)
	assert.Contains(t, string(mainPy), "class DemoApp:")
}

func TestNewCmdCreatesProjectFromEmbeddedTemplate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")

	stdin := "\n\n\n\ny\n"
	_, err := runNewCmd(t, stdin,
		"demo-app",
		"--template", "minimal",
		"--dir", target,
		"--skip-venv",
	)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "pyproject.toml"))
	assert.FileExists(t, filepath.Join(target, "src", "demo_app", "main.py"))
	assert.NoDirExists(t, filepath.Join(target, "src", "{{MODULE_NAME}}"))

	// Blank answers take the built-in defaults.
	pyproject, err := os.ReadFile(filepath.Join(target, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), "Your Name")
	assert.NotContains(t, string(pyproject), "{{")
}

func TestNewCmdNoInputUsesDefaults(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")

	out, err := runNewCmd(t, "",
		"demo-app",
		"--template", "standard",
		"--dir", target,
		"--no-input",
		"--skip-venv",
	)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Cancelled")

	assert.FileExists(t, filepath.Join(target, "Makefile"))
	assert.FileExists(t, filepath.Join(target, "LICENSE"))
}

func TestNewCmdNoInputRequiresProjectName(t *testing.T) {
	_, err := runNewCmd(t, "", "--no-input", "--skip-venv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestNewCmdDeclinedConfirmationExitsClean(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo-app")

	stdin := "\n\n\n\nn\n"
	out, err := runNewCmd(t, stdin,
		"demo-app",
		"--template", "minimal",
		"--dir", target,
		"--skip-venv",
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Cancelled")
	assert.NoDirExists(t, target)
}

func TestNewCmdUnknownTemplate(t *testing.T) {
	_, err := runNewCmd(t, "", "demo-app", "--template", "bogus", "--skip-venv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestNewCmdMissingTemplateDir(t *testing.T) {
	_, err := runNewCmd(t, "", "demo-app",
		"--template-dir", filepath.Join(t.TempDir(), "nope"),
		"--skip-venv",
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestNewCmdRejectsNonEmptyTarget(t *testing.T) {
	target := t.TempDir()
	existing := filepath.Join(target, "keep.txt")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o644))

	stdin := "\n\n\n\ny\n"
	_, err := runNewCmd(t, stdin,
		"demo-app",
		"--template", "minimal",
		"--dir", target,
		"--skip-venv",
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
	assert.Equal(t, ExitPreconditionError, ExitCodeFromError(err))

	content, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "keep", string(content))
}

func TestNewCmdInvalidPresetName(t *testing.T) {
	_, err := runNewCmd(t, "", "_badname", "--skip-venv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestNewCmdFlags(t *testing.T) {
	cmd := NewNewCmd()

	for _, flag := range []string{"template", "template-dir", "dir", "no-input", "skip-venv"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %s", flag)
	}
	assert.Equal(t, "standard", cmd.Flags().Lookup("template").DefValue)
}

func TestDescribeFile(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"pyproject.toml", "Package configuration"},
		{"src/demo_app/main.py", "Application entry point"},
		{"tests/test_demo_app.py", "Tests"},
		{"test_hello_world.py", "Tests"},
		{"docs/notes.rst", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeFile(tt.rel), tt.rel)
	}
}
