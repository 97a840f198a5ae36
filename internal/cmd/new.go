package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/sproutkit/cli/internal/errors"
	"github.com/sproutkit/cli/internal/output"
	"github.com/sproutkit/cli/internal/project"
	"github.com/sproutkit/cli/internal/templates"
	"github.com/sproutkit/cli/internal/venv"
	"github.com/sproutkit/cli/internal/wizard"
)

// newOptions holds the flag values for sprout new.
type newOptions struct {
	template    string
	templateDir string
	dir         string
	noInput     bool
	skipVenv    bool
}

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new project from a template",
		Long: `Create a new project from a template.

Collects project metadata, copies the template into the target directory,
resolves placeholder tokens in file names and contents, and offers to set up
a Python virtual environment with the project installed in editable mode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runNew(cmd, opts, name)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", templates.DefaultTemplateName, "embedded template to use")
	cmd.Flags().StringVar(&opts.templateDir, "template-dir", "", "use an on-disk template directory instead of an embedded template")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "target directory (default ./<project-name>)")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "answer prompts with defaults instead of asking")
	cmd.Flags().BoolVar(&opts.skipVenv, "skip-venv", false, "skip the virtual environment setup")

	return cmd
}

func runNew(cmd *cobra.Command, opts *newOptions, presetName string) error {
	cfg := GetConfig()

	// Resolve the template before prompting so a bad name fails fast.
	materializer, err := resolveMaterializer(opts)
	if err != nil {
		return err
	}

	w := wizard.New(cfg)
	w.In = cmd.InOrStdin()
	w.Out = cmd.OutOrStdout()
	w.NoInput = opts.noInput

	meta, err := w.Run(presetName)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}

	printSummary(cmd, meta)

	// --no-input is the confirmation: there is nobody to ask.
	if !opts.noInput {
		proceed, err := w.Confirm("Create the project?", false)
		if err != nil {
			return err
		}
		if !proceed {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	dir := opts.dir
	if dir == "" {
		dir, err = w.AskTarget(meta.ProjectName)
		if err != nil {
			return err
		}
	}

	target, err := project.ResolveTarget(dir, meta.ProjectName, func() bool {
		output.Warn("target is the current directory, existing files may be overwritten")
		return w.ConfirmLiteralYes("Set up the project in the current directory?")
	})
	if err != nil {
		return err
	}

	reps := meta.Replacements()

	cmd.Println()
	cmd.Println(fmt.Sprintf("Copying template to %s...", target.Path))
	if err := materializer.Materialize(target.Path); err != nil {
		return fmt.Errorf("copying template: %w", err)
	}
	if err := materializer.FixSrcLayout(target.Path, meta.ModuleName); err != nil {
		return fmt.Errorf("fixing src layout: %w", err)
	}

	renamed, err := project.RenamePaths(target.Path, reps)
	if err != nil {
		return fmt.Errorf("renaming template paths: %w", err)
	}
	output.Debug("renamed template paths", "count", renamed)

	substituted, err := project.SubstituteContent(target.Path, reps)
	if err != nil {
		return fmt.Errorf("substituting template variables: %w", err)
	}
	output.Debug("substituted template variables", "files", substituted)

	for _, finding := range project.VerifyRendered(target.Path, reps) {
		output.Warn("render check", "finding", finding)
	}

	cmd.Println()
	cmd.Print(output.RenderFileTree(filepath.Base(target.Path), collectTreeFiles(target.Path)))
	cmd.Println()
	cmd.Println(output.FormatCheckmark(fmt.Sprintf("Project %s created at %s", meta.ProjectName, target.Path)))

	if opts.skipVenv {
		output.Debug("skipping virtual environment setup")
		return nil
	}
	runVenvSetup(cmd, w, cfg.Python, target.Path)

	return nil
}

// resolveMaterializer picks the template source: an on-disk directory when
// --template-dir is set, an embedded template otherwise.
func resolveMaterializer(opts *newOptions) (*project.Materializer, error) {
	if opts.templateDir != "" {
		info, err := os.Stat(opts.templateDir)
		if err != nil || !info.IsDir() {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("template directory %s not found", opts.templateDir),
				opts.templateDir,
				"Check the --template-dir path",
			)
		}
		return &project.Materializer{TemplateRoot: opts.templateDir}, nil
	}

	fsys, err := templates.FS(opts.template)
	if err != nil {
		return nil, err
	}
	return &project.Materializer{TemplateFS: fsys}, nil
}

// printSummary shows the collected metadata before the final confirmation.
func printSummary(cmd *cobra.Command, meta project.Metadata) {
	styles := output.GetStyles()

	cmd.Println()
	cmd.Println(styles.Bold.Render("Project summary"))
	rows := []struct{ label, value string }{
		{"Name", meta.ProjectName},
		{"Description", meta.Description},
		{"Author", fmt.Sprintf("%s <%s>", meta.AuthorName, meta.AuthorEmail)},
		{"GitHub", meta.GitHubUser},
		{"Module", meta.ModuleName},
		{"Main class", meta.MainClass},
	}
	for _, row := range rows {
		cmd.Println(fmt.Sprintf("  %-12s %s", row.label+":", styles.Noun.Render(row.value)))
	}
	cmd.Println()
}

// collectTreeFiles walks the created project and maps relative file paths to
// short descriptions for the tree rendering.
func collectTreeFiles(target string) map[string]string {
	files := map[string]string{}
	_ = filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == venv.EnvDirName && filepath.Dir(p) == target {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(target, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		files[rel] = describeFile(rel)
		return nil
	})
	return files
}

// describeFile returns the tree annotation for well-known project files.
func describeFile(rel string) string {
	base := filepath.Base(rel)
	switch base {
	case "pyproject.toml":
		return "Package configuration"
	case "README.md":
		return "Project documentation"
	case "Makefile":
		return "Developer tasks"
	case "LICENSE":
		return "License"
	case ".gitignore":
		return "Git ignore rules"
	case "main.py":
		return "Application entry point"
	case "__init__.py":
		return "Package marker"
	}
	if strings.HasPrefix(rel, "tests/") || strings.HasPrefix(base, "test_") {
		return "Tests"
	}
	return ""
}

// runVenvSetup offers and runs the virtual environment bootstrap. Failures
// are reported with manual fallback instructions and never fail the command.
func runVenvSetup(cmd *cobra.Command, w *wizard.Wizard, python, target string) {
	proceed, err := w.Confirm("Set up a virtual environment and install dependencies?", true)
	if err != nil || !proceed {
		cmd.Println()
		cmd.Print(venv.ManualInstructions(target, python))
		return
	}

	bootstrapper := venv.New(python, target)
	err = output.RunWithSpinner(cmd.Context(), func() error {
		return bootstrapper.Bootstrap(cmd.Context())
	}, output.WithTitle("Setting up virtual environment..."))
	if err != nil {
		output.Error("virtual environment setup failed", "error", err)
		cmd.Println()
		cmd.Print(venv.ManualInstructions(target, python))
		return
	}

	cmd.Println(output.FormatCheckmark("Virtual environment ready"))
	cmd.Println()
	cmd.Println("Next steps:")
	cmd.Println(fmt.Sprintf("  cd %s", target))
	cmd.Println(fmt.Sprintf("  %s", venv.ActivateCommand()))
}
