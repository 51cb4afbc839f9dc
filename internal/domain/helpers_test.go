package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"openheader.dev/pkg/openheader/internal/adapter"
	m "openheader.dev/pkg/openheader/internal/model"
)

// writeSources creates empty files named in names under a fresh temp dir.
func writeSources(t *testing.T, names ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("/* "+name+" */\n"), 0o644))
	}

	return root
}

func newTestResolver() CompanionResolver {
	return NewCompanionResolver(adapter.NewLocalSourceFSAdapter())
}

func pathIn(root, name string) m.Path {
	return m.Path(filepath.Join(root, name))
}

// caseSensitiveFS reports whether root tells Foo.h and foo.h apart.
func caseSensitiveFS(t *testing.T, root string) bool {
	t.Helper()

	marker := filepath.Join(root, "case_marker")
	require.NoError(t, os.WriteFile(marker, nil, 0o644))
	defer os.Remove(marker)

	_, err := os.Stat(filepath.Join(root, "CASE_MARKER"))

	return os.IsNotExist(err)
}
