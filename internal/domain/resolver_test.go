package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "openheader.dev/pkg/openheader/internal/adapter/mocks"
	m "openheader.dev/pkg/openheader/internal/model"
)

func TestResolve_HeaderToImplementation(t *testing.T) {
	root := writeSources(t, "foo.h", "foo.cpp")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

	assert.Equal(t, m.Found(pathIn(root, "foo.cpp")), got)
}

func TestResolve_ImplementationToHeader(t *testing.T) {
	root := writeSources(t, "bar.c", "bar.hpp")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "bar.c"))

	assert.Equal(t, m.Found(pathIn(root, "bar.hpp")), got)
}

func TestResolve_NoCompanion(t *testing.T) {
	root := writeSources(t, "foo.h")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

	assert.Equal(t, m.NotFound, got)
	assert.False(t, got.Found)
	assert.Empty(t, got.Path)
}

func TestResolve_DeclaredOrderWins(t *testing.T) {
	t.Run("header prefers .c over .cpp", func(t *testing.T) {
		root := writeSources(t, "foo.h", "foo.c", "foo.cpp")

		got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

		assert.Equal(t, m.Found(pathIn(root, "foo.c")), got)
	})

	t.Run("implementation prefers .h over .hpp", func(t *testing.T) {
		root := writeSources(t, "foo.cpp", "foo.h", "foo.hpp")

		got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.cpp"))

		assert.Equal(t, m.Found(pathIn(root, "foo.h")), got)
	})

	t.Run("uppercase variant of an earlier extension beats a later one", func(t *testing.T) {
		root := writeSources(t, "foo.h", "foo.C", "foo.cpp")
		if !caseSensitiveFS(t, root) {
			t.Skip("filesystem folds case")
		}

		got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

		assert.Equal(t, m.Found(pathIn(root, "foo.C")), got)
	})
}

func TestResolve_ExtensionCaseIgnored(t *testing.T) {
	root := writeSources(t, "foo.h", "foo.c")
	resolver := newTestResolver()

	lower := resolver.Resolve(context.Background(), pathIn(root, "foo.h"))
	upper := resolver.Resolve(context.Background(), pathIn(root, "foo.H"))

	assert.Equal(t, lower, upper)
	assert.Equal(t, m.Found(pathIn(root, "foo.c")), upper)
}

func TestResolve_UppercaseCompanion(t *testing.T) {
	root := writeSources(t, "Foo.H", "Foo.C")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "Foo.H"))

	require.True(t, got.Found)
	if caseSensitiveFS(t, root) {
		assert.Equal(t, pathIn(root, "Foo.C"), got.Path)
	} else {
		// The lowercase candidate already matches on a case-folding filesystem.
		assert.Equal(t, pathIn(root, "Foo.c"), got.Path)
	}
}

func TestResolve_UnrecognisedExtension(t *testing.T) {
	root := writeSources(t, "notes.txt", "notes.h", "notes.c", "script.py", "Makefile", "Makefile.c")
	resolver := newTestResolver()

	for _, name := range []string{"notes.txt", "script.py", "Makefile", ".h", "notes.cc"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, m.NotFound, resolver.Resolve(context.Background(), pathIn(root, name)))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	root := writeSources(t, "foo.hpp", "foo.cpp")
	resolver := newTestResolver()

	first := resolver.Resolve(context.Background(), pathIn(root, "foo.hpp"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resolver.Resolve(context.Background(), pathIn(root, "foo.hpp")))
	}
}

func TestResolve_SkipsDirectories(t *testing.T) {
	root := writeSources(t, "foo.h", "foo.cpp")
	require.NoError(t, os.Mkdir(filepath.Join(root, "foo.c"), 0o755))

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

	assert.Equal(t, m.Found(pathIn(root, "foo.cpp")), got)
}

func TestResolve_SameDirectoryOnly(t *testing.T) {
	root := writeSources(t, "include/foo.h", "src/foo.c")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "include/foo.h"))

	assert.Equal(t, m.NotFound, got)
}

func TestResolve_SourceNeedNotExist(t *testing.T) {
	root := writeSources(t, "foo.c")

	got := newTestResolver().Resolve(context.Background(), pathIn(root, "foo.h"))

	assert.Equal(t, m.Found(pathIn(root, "foo.c")), got)
}

func TestResolve_CandidateOrder(t *testing.T) {
	tests := []struct {
		name   string
		source m.Path
		want   []m.Path
	}{
		{
			name:   "header tries implementations",
			source: "src/foo.hpp",
			want:   []m.Path{"src/foo.c", "src/foo.C", "src/foo.cpp", "src/foo.CPP"},
		},
		{
			name:   "implementation tries headers",
			source: "src/foo.cpp",
			want:   []m.Path{"src/foo.h", "src/foo.H", "src/foo.hpp", "src/foo.HPP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

			var tried []m.Path

			fsAdapter.EXPECT().
				IsRegularFile(mock.Anything, mock.Anything).
				Run(func(_ context.Context, path m.Path) { tried = append(tried, path) }).
				Return(false)

			got := NewCompanionResolver(fsAdapter).Resolve(context.Background(), tt.source)

			assert.Equal(t, m.NotFound, got)
			assert.Equal(t, tt.want, tried)
		})
	}
}

func TestResolve_StopsAtFirstMatch(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	fsAdapter.EXPECT().IsRegularFile(mock.Anything, m.Path("foo.c")).Return(false).Once()
	fsAdapter.EXPECT().IsRegularFile(mock.Anything, m.Path("foo.C")).Return(true).Once()

	got := NewCompanionResolver(fsAdapter).Resolve(context.Background(), "foo.H")

	assert.Equal(t, m.Found("foo.C"), got)
}

func TestResolve_CancelledContext(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := NewCompanionResolver(fsAdapter).Resolve(ctx, "foo.h")

	assert.Equal(t, m.NotFound, got)
	fsAdapter.AssertNotCalled(t, "IsRegularFile", mock.Anything, mock.Anything)
}
