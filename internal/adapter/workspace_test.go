package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "openheader.dev/pkg/openheader/internal/model"
)

func newTestWorkspace(t *testing.T, names ...string) (*Workspace, []m.Path) {
	t.Helper()

	root := t.TempDir()
	ws := NewWorkspace(NewLocalSourceFSAdapter())

	paths := make([]m.Path, 0, len(names))
	for _, name := range names {
		path := filepath.Join(root, name)
		writeTestFile(t, path, "// "+name+"\n")
		require.NoError(t, ws.OpenLocation(context.Background(), m.Path(path)))
		paths = append(paths, m.Path(path))
	}

	return ws, paths
}

func TestWorkspace_OpenLocation(t *testing.T) {
	ws, paths := newTestWorkspace(t, "foo.h", "foo.c")

	docs := ws.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, paths[0], docs[0].Location)
	assert.Equal(t, "foo.h", docs[0].Name)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)

	active, ok := ws.ActiveDocument()
	require.True(t, ok)
	assert.Equal(t, paths[1], active.Location, "last opened document is active")
	assert.Equal(t, "// foo.c\n", ws.Content(active.ID))
}

func TestWorkspace_OpenLocation_MissingFile(t *testing.T) {
	ws := NewWorkspace(NewLocalSourceFSAdapter())

	err := ws.OpenLocation(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope.c")))
	require.Error(t, err)
	assert.Empty(t, ws.Documents())

	_, ok := ws.ActiveDocument()
	assert.False(t, ok)
}

func TestWorkspace_FocusDocument(t *testing.T) {
	ws, paths := newTestWorkspace(t, "foo.h", "foo.c")
	docs := ws.Documents()

	assert.True(t, ws.FocusDocument(docs[0].ID))

	active, _ := ws.ActiveDocument()
	assert.Equal(t, paths[0], active.Location)

	assert.False(t, ws.FocusDocument("missing"))

	active, _ = ws.ActiveDocument()
	assert.Equal(t, paths[0], active.Location, "failed focus keeps active document")
}

func TestWorkspace_Cycle(t *testing.T) {
	ws, paths := newTestWorkspace(t, "a.c", "b.c", "c.c")

	ws.Next()
	active, _ := ws.ActiveDocument()
	assert.Equal(t, paths[0], active.Location, "next wraps to the first document")

	ws.Previous()
	active, _ = ws.ActiveDocument()
	assert.Equal(t, paths[2], active.Location, "previous wraps to the last document")

	ws.Previous()
	active, _ = ws.ActiveDocument()
	assert.Equal(t, paths[1], active.Location)
}

func TestWorkspace_Close(t *testing.T) {
	ws, paths := newTestWorkspace(t, "a.c", "b.c", "c.c")
	docs := ws.Documents()

	require.True(t, ws.FocusDocument(docs[1].ID))
	require.True(t, ws.Close(docs[1].ID))

	active, _ := ws.ActiveDocument()
	assert.Equal(t, paths[2], active.Location)

	require.True(t, ws.Close(docs[2].ID))
	active, _ = ws.ActiveDocument()
	assert.Equal(t, paths[0], active.Location)

	require.True(t, ws.Close(docs[0].ID))
	_, ok := ws.ActiveDocument()
	assert.False(t, ok)
	assert.False(t, ws.Close(docs[0].ID))
}

func TestWorkspace_AddScratch(t *testing.T) {
	ws := NewWorkspace(NewLocalSourceFSAdapter())

	doc := ws.AddScratch("draft")
	assert.False(t, doc.HasLocation())
	assert.Equal(t, "Untitled 1", doc.Name)
	assert.Equal(t, "draft", ws.Content(doc.ID))

	active, ok := ws.ActiveDocument()
	require.True(t, ok)
	assert.Equal(t, doc, active)
}
