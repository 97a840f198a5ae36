package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sproutkit/cli/internal/config"
	"github.com/sproutkit/cli/internal/output"
	"github.com/sproutkit/cli/internal/project"
)

// Wizard runs the metadata collection dialog. Interactive TTY sessions use a
// huh form; everything else (pipes, tests, --no-input) goes through the
// line-based path reading from In, so the whole flow is drivable from an
// injected input source.
type Wizard struct {
	// In is the line-based input source for non-interactive runs.
	In io.Reader

	// Out receives prompts and messages in non-interactive runs.
	Out io.Writer

	// Interactive selects the huh form over the line-based path.
	Interactive bool

	// NoInput answers every prompt with its default instead of reading
	// anything. Prompts without a usable default fail.
	NoInput bool

	// Defaults supplies the fallback answers (from config).
	Defaults *config.Config

	scanner *bufio.Scanner
}

// New creates a wizard wired to the standard streams.
func New(cfg *config.Config) *Wizard {
	return &Wizard{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: output.IsInputTTY() && output.IsTTY(),
		Defaults:    cfg,
	}
}

// Run collects and validates all project metadata. presetName, when
// non-empty, is taken as the project name after a single validation instead
// of prompting for one.
func (w *Wizard) Run(presetName string) (project.Metadata, error) {
	if w.Defaults == nil {
		w.Defaults = config.DefaultConfig()
	}

	name := presetName
	if name != "" {
		if err := ValidateProjectName(name); err != nil {
			return project.Metadata{}, err
		}
	}

	if w.Interactive && !w.NoInput {
		return w.runForm(name)
	}
	return w.runPlain(name)
}

// runForm collects metadata with a huh form.
func (w *Wizard) runForm(name string) (project.Metadata, error) {
	var description, author, email, github string

	fields := []huh.Field{}
	if name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Description("e.g. my-awesome-project").
			Validate(ValidateProjectName).
			Value(&name))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Project description").
			Placeholder("blank for a default").
			Value(&description),
		huh.NewInput().
			Title("Author name").
			Placeholder(w.Defaults.Author.Name).
			Value(&author),
		huh.NewInput().
			Title("Author email").
			Placeholder(w.Defaults.Author.Email).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				return ValidateEmail(strings.TrimSpace(s))
			}).
			Value(&email),
		huh.NewInput().
			Title("GitHub username").
			Placeholder(w.Defaults.GitHub).
			Value(&github),
	)

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return project.Metadata{}, fmt.Errorf("collecting project metadata: %w", err)
	}

	return w.assemble(name, description, author, email, github), nil
}

// runPlain collects metadata from the line-based input source, re-prompting
// on invalid answers exactly like the interactive form.
func (w *Wizard) runPlain(name string) (project.Metadata, error) {
	var err error

	if name == "" {
		name, err = w.askUntil("Project name (e.g. my-awesome-project): ", ValidateProjectName)
		if err != nil {
			return project.Metadata{}, err
		}
	}

	description, err := w.ask("Project description: ")
	if err != nil {
		return project.Metadata{}, err
	}
	author, err := w.ask(fmt.Sprintf("Author name [%s]: ", w.Defaults.Author.Name))
	if err != nil {
		return project.Metadata{}, err
	}
	email, err := w.askUntil(fmt.Sprintf("Author email [%s]: ", w.Defaults.Author.Email), func(s string) error {
		if s == "" {
			return nil
		}
		return ValidateEmail(s)
	})
	if err != nil {
		return project.Metadata{}, err
	}
	github, err := w.ask(fmt.Sprintf("GitHub username [%s]: ", w.Defaults.GitHub))
	if err != nil {
		return project.Metadata{}, err
	}

	return w.assemble(name, description, author, email, github), nil
}

// assemble applies defaults to blank answers and derives identifiers.
func (w *Wizard) assemble(name, description, author, email, github string) project.Metadata {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	author = strings.TrimSpace(author)
	email = strings.TrimSpace(email)
	github = strings.TrimSpace(github)

	if description == "" {
		description = fmt.Sprintf("A Python project: %s", name)
	}
	if author == "" {
		author = w.Defaults.Author.Name
	}
	if email == "" {
		email = w.Defaults.Author.Email
	}
	if github == "" {
		github = w.Defaults.GitHub
	}

	return project.NewMetadata(name, description, author, email, github)
}

// AskTarget prompts for the target directory; blank keeps the default.
func (w *Wizard) AskTarget(projectName string) (string, error) {
	if w.NoInput {
		return "", nil
	}

	prompt := fmt.Sprintf("Target directory [./%s]: ", projectName)
	if w.Interactive {
		var dir string
		err := huh.NewInput().
			Title("Target directory").
			Placeholder("./" + projectName).
			Value(&dir).
			Run()
		if err != nil {
			return "", fmt.Errorf("asking target directory: %w", err)
		}
		return strings.TrimSpace(dir), nil
	}

	return w.ask(prompt)
}

// Confirm asks a yes/no question; blank takes the default.
func (w *Wizard) Confirm(title string, def bool) (bool, error) {
	if w.NoInput {
		return def, nil
	}

	if w.Interactive {
		confirmed := def
		err := huh.NewConfirm().Title(title).Value(&confirmed).Run()
		if err != nil {
			return false, fmt.Errorf("asking confirmation: %w", err)
		}
		return confirmed, nil
	}

	suffix := " (y/N): "
	if def {
		suffix = " (Y/n): "
	}
	answer, err := w.ask(title + suffix)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmLiteralYes asks a question that only the exact answer "yes"
// (case-insensitive) confirms. Used for the in-place safety check.
func (w *Wizard) ConfirmLiteralYes(title string) bool {
	if w.NoInput {
		return false
	}

	var answer string
	if w.Interactive {
		err := huh.NewInput().
			Title(title).
			Description("Type 'yes' to confirm").
			Value(&answer).
			Run()
		if err != nil {
			return false
		}
	} else {
		var err error
		answer, err = w.ask(title + " (type 'yes' to confirm): ")
		if err != nil {
			return false
		}
	}

	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// ask writes the prompt and reads one trimmed line.
func (w *Wizard) ask(prompt string) (string, error) {
	if w.NoInput {
		return "", nil
	}
	if w.scanner == nil {
		w.scanner = bufio.NewScanner(w.In)
	}

	fmt.Fprint(w.Out, prompt)
	if !w.scanner.Scan() {
		if err := w.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("input closed before all prompts were answered")
	}
	return strings.TrimSpace(w.scanner.Text()), nil
}

// askUntil re-prompts until validate accepts the answer.
func (w *Wizard) askUntil(prompt string, validate func(string) error) (string, error) {
	if w.NoInput {
		// No chance to re-prompt: the default answer must pass as-is.
		if err := validate(""); err != nil {
			return "", err
		}
		return "", nil
	}

	for {
		answer, err := w.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			fmt.Fprintf(w.Out, "✗ %s\n", err)
			continue
		}
		return answer, nil
	}
}
