package controller

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"openheader.dev/pkg/openheader/internal/adapter"
	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

// newTestWorkspace writes files into a temp dir and opens the ones listed in
// open, in order.
func newTestWorkspace(t *testing.T, files map[string]string, open ...string) (*adapter.Workspace, string) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	ws := adapter.NewWorkspace(adapter.NewLocalSourceFSAdapter())
	for _, name := range open {
		require.NoError(t, ws.OpenLocation(context.Background(), m.Path(filepath.Join(root, name))))
	}

	return ws, root
}

// openPlugin registers one action that opens target in the window.
type openPlugin struct {
	accelerator string
	target      m.Path
	window      host.Window
	mergeID     host.MergeID
	deactivated bool
}

func (p *openPlugin) Activate(_ context.Context, window host.Window) error {
	id, err := window.AddAction(m.Action{
		Name:        "OpenTarget",
		Label:       "Open _Target",
		Accelerator: p.accelerator,
	}, func(ctx context.Context) error {
		return window.OpenLocation(ctx, p.target)
	})
	if err != nil {
		return err
	}

	p.window = window
	p.mergeID = id

	return nil
}

func (p *openPlugin) Deactivate(_ context.Context) error {
	p.deactivated = true

	return p.window.RemoveAction(p.mergeID)
}
