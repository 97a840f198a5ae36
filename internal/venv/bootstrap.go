// Package venv bootstraps a Python virtual environment for a freshly
// materialized project.
package venv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sproutkit/cli/internal/output"
)

// EnvDirName is the environment directory created inside the project.
const EnvDirName = "venv"

// runFunc executes one command in dir and returns its combined output.
type runFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Bootstrapper creates a virtual environment and installs the project into
// it in editable mode. All steps are blocking subprocesses; output is
// captured, not streamed.
type Bootstrapper struct {
	// Python is the interpreter used to create the environment.
	Python string

	// Dir is the project directory.
	Dir string

	run runFunc
}

// New creates a bootstrapper for the project in dir.
func New(python, dir string) *Bootstrapper {
	return &Bootstrapper{
		Python: python,
		Dir:    dir,
		run:    runCommand,
	}
}

// Bootstrap removes any pre-existing environment, creates a fresh one,
// upgrades pip inside it, and installs the project with its dev extras.
func (b *Bootstrapper) Bootstrap(ctx context.Context) error {
	envDir := filepath.Join(b.Dir, EnvDirName)
	if _, err := os.Stat(envDir); err == nil {
		output.Debug("removing existing environment", "dir", envDir)
		if err := os.RemoveAll(envDir); err != nil {
			return fmt.Errorf("removing existing environment: %w", err)
		}
	}

	if out, err := b.run(ctx, b.Dir, b.Python, "-m", "venv", EnvDirName); err != nil {
		return commandError("creating virtual environment", out, err)
	}

	venvPython := b.interpreterPath()
	if _, err := os.Stat(venvPython); err != nil {
		return fmt.Errorf("virtual environment python not found at %s", venvPython)
	}

	if out, err := b.run(ctx, b.Dir, venvPython, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return commandError("upgrading pip", out, err)
	}

	if out, err := b.run(ctx, b.Dir, venvPython, "-m", "pip", "install", "-e", ".[dev]"); err != nil {
		return commandError("installing project", out, err)
	}

	return nil
}

// interpreterPath returns the python executable inside the environment.
func (b *Bootstrapper) interpreterPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(b.Dir, EnvDirName, "Scripts", "python.exe")
	}
	return filepath.Join(b.Dir, EnvDirName, "bin", "python")
}

// ActivateCommand returns the shell command that activates the environment.
func ActivateCommand() string {
	if runtime.GOOS == "windows" {
		return EnvDirName + `\Scripts\activate`
	}
	return "source " + EnvDirName + "/bin/activate"
}

// ManualInstructions returns the fallback setup steps printed when the
// bootstrap fails or is declined.
func ManualInstructions(dir, python string) string {
	var b strings.Builder
	b.WriteString("Manual setup:\n")
	fmt.Fprintf(&b, "  cd %s\n", dir)
	fmt.Fprintf(&b, "  %s -m venv %s\n", python, EnvDirName)
	fmt.Fprintf(&b, "  %s\n", ActivateCommand())
	b.WriteString("  pip install -e \".[dev]\"\n")
	return b.String()
}

// runCommand is the default runner: a blocking subprocess in dir.
func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// commandError shapes a subprocess failure, keeping the output tail for
// the operator.
func commandError(what string, out []byte, err error) error {
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return fmt.Errorf("%s: %w", what, err)
	}
	const tail = 400
	if len(msg) > tail {
		msg = "..." + msg[len(msg)-tail:]
	}
	return fmt.Errorf("%s: %w\n%s", what, err, msg)
}
