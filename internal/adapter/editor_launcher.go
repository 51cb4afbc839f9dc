package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	m "openheader.dev/pkg/openheader/internal/model"
)

// ErrNoEditor is returned when no editor command is configured.
var ErrNoEditor = errors.New("no editor configured")

// EditorLauncher abstracts starting an external editor on a file.
type EditorLauncher interface {
	// Launch runs editor with path appended to its arguments and waits for it
	// to exit. editor may carry its own arguments (e.g. "code --wait").
	Launch(ctx context.Context, editor string, path m.Path) error
}

// LocalEditorLauncher provides a concrete implementation using os/exec.
type LocalEditorLauncher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLocalEditorLauncher constructs a LocalEditorLauncher wired to the given
// terminal streams.
func NewLocalEditorLauncher(stdin io.Reader, stdout, stderr io.Writer) *LocalEditorLauncher {
	return &LocalEditorLauncher{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Launch starts the editor and blocks until it exits.
func (a *LocalEditorLauncher) Launch(ctx context.Context, editor string, path m.Path) error {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return ErrNoEditor
	}

	args := append(fields[1:], string(path))

	// #nosec G204 - the editor command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	slog.Debug("launching editor", "editor", fields[0], "path", path)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", fields[0], err)
	}

	return nil
}

// LaunchHost is a single-document editor host: the active document is the
// file given on the command line and opening a location launches an editor.
type LaunchHost struct {
	active   m.Document
	launcher EditorLauncher
	editor   string
}

// NewLaunchHost builds a LaunchHost whose active document is path.
func NewLaunchHost(path m.Path, launcher EditorLauncher, editor string) *LaunchHost {
	host := &LaunchHost{
		launcher: launcher,
		editor:   editor,
	}

	if path != "" {
		host.active = newDocument(path)
	}

	return host
}

// ActiveDocument returns the command-line document, if any.
func (h *LaunchHost) ActiveDocument() (m.Document, bool) {
	if h.active.ID == "" {
		return m.Document{}, false
	}

	return h.active, true
}

// Documents lists the only document this host knows about.
func (h *LaunchHost) Documents() []m.Document {
	if h.active.ID == "" {
		return nil
	}

	return []m.Document{h.active}
}

// FocusDocument succeeds only for the active document itself.
func (h *LaunchHost) FocusDocument(id string) bool {
	return h.active.ID != "" && h.active.ID == id
}

// OpenLocation hands path to the external editor.
func (h *LaunchHost) OpenLocation(ctx context.Context, path m.Path) error {
	return h.launcher.Launch(ctx, h.editor, path)
}
