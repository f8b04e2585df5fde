package pip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/bnema/mllib-cli/internal/ports"
)

const DefaultCommand = "pip"

var ErrUnavailable = errors.New("installer command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Installer shells out to the host package manager as
// `<command> install <library>`, synchronously, with no timeout or retry.
type Installer struct {
	command string
	output  io.Writer
	run     runFunc
}

var _ ports.Installer = (*Installer)(nil)

type Option func(*Installer)

// WithOutput streams the package manager's stdout to w as it runs, in
// addition to capturing it.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) {
		i.output = w
	}
}

func New(command string, opts ...Option) *Installer {
	if command == "" {
		command = DefaultCommand
	}

	installer := &Installer{command: command}
	installer.run = installer.runCommand

	for _, opt := range opts {
		opt(installer)
	}

	return installer
}

func (i *Installer) Install(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := i.run(ctx, "install", name)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.InstallFailure{
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
		}
	}

	return fmt.Errorf("run %s install %q: %w", i.command, name, err)
}

func (i *Installer) runCommand(ctx context.Context, args ...string) (string, string, error) {
	path, err := exec.LookPath(i.command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s", ErrUnavailable, i.command)
		}
		return "", "", fmt.Errorf("locate %s command: %w", i.command, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if i.output != nil {
		cmd.Stdout = io.MultiWriter(&stdout, i.output)
	} else {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
