package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "openheader.dev/pkg/openheader/internal/model"
)

func TestLocalEditorLauncher_Launch_Success(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	var stdout bytes.Buffer
	launcher := NewLocalEditorLauncher(nil, &stdout, &bytes.Buffer{})

	path := m.Path(filepath.Join(t.TempDir(), "foo.c"))
	err := launcher.Launch(context.Background(), "echo -n", path)
	require.NoError(t, err)
	assert.Equal(t, string(path), stdout.String())
}

func TestLocalEditorLauncher_Launch_Failure(t *testing.T) {
	launcher := NewLocalEditorLauncher(nil, &bytes.Buffer{}, &bytes.Buffer{})

	err := launcher.Launch(context.Background(), "openheader-no-such-editor", "foo.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openheader-no-such-editor")
}

func TestLocalEditorLauncher_Launch_EmptyEditor(t *testing.T) {
	launcher := NewLocalEditorLauncher(nil, &bytes.Buffer{}, &bytes.Buffer{})

	err := launcher.Launch(context.Background(), "   ", "foo.c")
	require.ErrorIs(t, err, ErrNoEditor)
}

type recordingLauncher struct {
	editor string
	paths  []m.Path
}

func (r *recordingLauncher) Launch(_ context.Context, editor string, path m.Path) error {
	r.editor = editor
	r.paths = append(r.paths, path)

	return nil
}

func TestLaunchHost(t *testing.T) {
	t.Run("exposes the command-line file as active document", func(t *testing.T) {
		host := NewLaunchHost("src/foo.h", &recordingLauncher{}, "vi")

		doc, ok := host.ActiveDocument()
		require.True(t, ok)
		assert.Equal(t, m.Path("src/foo.h"), doc.Location)
		assert.Equal(t, "foo.h", doc.Name)
		assert.Equal(t, []m.Document{doc}, host.Documents())
		assert.True(t, host.FocusDocument(doc.ID))
		assert.False(t, host.FocusDocument("other"))
	})

	t.Run("no path means no active document", func(t *testing.T) {
		host := NewLaunchHost("", &recordingLauncher{}, "vi")

		_, ok := host.ActiveDocument()
		assert.False(t, ok)
		assert.Empty(t, host.Documents())
		assert.False(t, host.FocusDocument(""))
	})

	t.Run("open location launches the editor", func(t *testing.T) {
		launcher := &recordingLauncher{}
		host := NewLaunchHost("foo.h", launcher, "nano")

		require.NoError(t, host.OpenLocation(context.Background(), "foo.c"))
		assert.Equal(t, "nano", launcher.editor)
		assert.Equal(t, []m.Path{"foo.c"}, launcher.paths)
	})
}
