// Package controller provides output adapters for companion lookups and the
// interactive editing session.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

// Workspace is the document set a session displays and switches between.
type Workspace interface {
	host.DocumentHost
	Content(id string) string
	Next()
	Previous()
}

// UI defines the interface for presenting companion results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayCompanion prints the companion of source. Nothing is printed
	// when there is none.
	DisplayCompanion(ctx context.Context, source m.Path, companion m.Companion) error
	DisplayPairs(ctx context.Context, pairs []m.Pair) error
	// RunSession activates plugin on a window over workspace and runs until
	// the session ends, deactivating the plugin on the way out.
	RunSession(ctx context.Context, workspace Workspace, plugin host.Plugin) error
}

// NewUI returns the interactive TUI on terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
