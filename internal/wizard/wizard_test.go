package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutkit/cli/internal/config"
)

// plainWizard builds a non-interactive wizard fed from scripted answers.
func plainWizard(answers ...string) (*Wizard, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Wizard{
		In:       strings.NewReader(strings.Join(answers, "\n") + "\n"),
		Out:      out,
		Defaults: config.DefaultConfig(),
	}, out
}

func TestRunCollectsEverything(t *testing.T) {
	w, _ := plainWizard(
		"demo-app",          // project name
		"A demo",            // description
		"Ada Lovelace",      // author
		"ada@example.com",   // email
		"adal",              // github
	)

	meta, err := w.Run("")

	require.NoError(t, err)
	assert.Equal(t, "demo-app", meta.ProjectName)
	assert.Equal(t, "A demo", meta.Description)
	assert.Equal(t, "Ada Lovelace", meta.AuthorName)
	assert.Equal(t, "ada@example.com", meta.AuthorEmail)
	assert.Equal(t, "adal", meta.GitHubUser)
	assert.Equal(t, "demo_app", meta.ModuleName)
	assert.Equal(t, "DemoApp", meta.MainClass)
}

func TestRunRepromptsInvalidName(t *testing.T) {
	w, out := plainWizard(
		"",          // empty: re-prompt
		"-bad",      // invalid: re-prompt
		"has space", // invalid: re-prompt
		"demo-app",  // accepted
		"", "", "", "",
	)

	meta, err := w.Run("")

	require.NoError(t, err)
	assert.Equal(t, "demo-app", meta.ProjectName)
	// Two of the three rejections carry the grammar explanation
	assert.GreaterOrEqual(t, strings.Count(out.String(), "✗"), 3)
}

func TestRunRepromptsInvalidEmail(t *testing.T) {
	w, _ := plainWizard(
		"demo-app",
		"",               // description default
		"",               // author default
		"not-an-email",   // rejected
		"user@",          // rejected
		"ada@example.com",// accepted
		"",               // github default
	)

	meta, err := w.Run("")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", meta.AuthorEmail)
}

func TestRunBlankAnswersTakeDefaults(t *testing.T) {
	w, _ := plainWizard("demo-app", "", "", "", "")

	meta, err := w.Run("")

	require.NoError(t, err)
	assert.Equal(t, "A Python project: demo-app", meta.Description)
	assert.Equal(t, config.DefaultAuthorName, meta.AuthorName)
	assert.Equal(t, config.DefaultAuthorEmail, meta.AuthorEmail)
	assert.Equal(t, config.DefaultGitHubUser, meta.GitHubUser)
}

func TestRunConfigDefaults(t *testing.T) {
	w, _ := plainWizard("demo-app", "", "", "", "")
	w.Defaults = &config.Config{
		Author: config.AuthorConfig{Name: "Ada", Email: "ada@example.com"},
		GitHub: "adal",
	}

	meta, err := w.Run("")

	require.NoError(t, err)
	assert.Equal(t, "Ada", meta.AuthorName)
	assert.Equal(t, "ada@example.com", meta.AuthorEmail)
	assert.Equal(t, "adal", meta.GitHubUser)
}

func TestRunPresetName(t *testing.T) {
	w, out := plainWizard("", "", "", "")

	meta, err := w.Run("demo-app")

	require.NoError(t, err)
	assert.Equal(t, "demo-app", meta.ProjectName)
	assert.NotContains(t, out.String(), "Project name")
}

func TestRunPresetNameInvalid(t *testing.T) {
	w, _ := plainWizard()

	_, err := w.Run("has space")

	assert.Error(t, err)
}

func TestRunInputClosed(t *testing.T) {
	w := &Wizard{
		In:       strings.NewReader("demo-app\n"),
		Out:      &bytes.Buffer{},
		Defaults: config.DefaultConfig(),
	}

	_, err := w.Run("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}

func TestRunNoInput(t *testing.T) {
	w := &Wizard{
		NoInput:  true,
		Defaults: config.DefaultConfig(),
	}

	meta, err := w.Run("demo-app")

	require.NoError(t, err)
	assert.Equal(t, "demo-app", meta.ProjectName)
	assert.Equal(t, config.DefaultAuthorName, meta.AuthorName)

	// Without a preset name there is nothing to fall back to.
	_, err = w.Run("")
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		def    bool
		want   bool
	}{
		{"y", false, true},
		{"yes", false, true},
		{"n", true, false},
		{"", true, true},
		{"", false, false},
		{"whatever", true, false},
	}

	for _, tt := range tests {
		w, _ := plainWizard(tt.answer)
		got, err := w.Confirm("Continue with setup?", tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "answer %q default %v", tt.answer, tt.def)
	}
}

func TestConfirmLiteralYes(t *testing.T) {
	for answer, want := range map[string]bool{
		"yes": true,
		"YES": true,
		"y":   false,
		"":    false,
		"no":  false,
	} {
		w, _ := plainWizard(answer)
		assert.Equal(t, want, w.ConfirmLiteralYes("Run in the current directory?"), "answer %q", answer)
	}
}

func TestAskTarget(t *testing.T) {
	w, out := plainWizard("./somewhere")

	dir, err := w.AskTarget("demo-app")

	require.NoError(t, err)
	assert.Equal(t, "./somewhere", dir)
	assert.Contains(t, out.String(), "demo-app")
}
