package domain

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "openheader.dev/pkg/openheader/internal/model"
)

const examplesRoot = "../../examples"

func examplePath(parts ...string) m.Path {
	return m.Path(filepath.Join(append([]string{examplesRoot}, parts...)...))
}

func TestExamples_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		source m.Path
		want   m.Path
	}{
		{"c header", examplePath("basic", "greet.h"), examplePath("basic", "greet.c")},
		{"c implementation", examplePath("basic", "greet.c"), examplePath("basic", "greet.h")},
		{"cpp header", examplePath("cpp", "widget.hpp"), examplePath("cpp", "widget.cpp")},
		{"cpp implementation", examplePath("cpp", "widget.cpp"), examplePath("cpp", "widget.hpp")},
		{"uppercase extensions", examplePath("mixed", "Parser.H"), examplePath("mixed", "Parser.C")},
		{"declared order", examplePath("precedence", "util.h"), examplePath("precedence", "util.c")},
		{"directory named like a candidate", examplePath("dirs", "foo.h"), examplePath("dirs", "foo.cpp")},
		{"orphan header", examplePath("orphan", "config.h"), ""},
		{"split directories", examplePath("split", "include", "queue.h"), ""},
		{"unrecognised", examplePath("basic", "README.txt"), ""},
		{"dotfile header", examplePath("dotfiles", ".h"), ""},
	}

	resolver := newTestResolver()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(context.Background(), tt.source)

			if tt.want == "" {
				assert.Equal(t, m.NotFound, got)
				return
			}

			require.True(t, got.Found)
			assert.Equal(t, filepath.Dir(string(tt.want)), filepath.Dir(string(got.Path)))
			// Case-folding filesystems satisfy the lowercase candidate first.
			assert.True(t, strings.EqualFold(filepath.Base(string(tt.want)), filepath.Base(string(got.Path))),
				"want %s, got %s", tt.want, got.Path)
		})
	}
}

func TestExamples_List(t *testing.T) {
	pairs, err := newTestLister().List(context.Background(), ListArgs{
		Paths:    []m.Path{examplesRoot + "/..."},
		Parallel: 4,
	})
	require.NoError(t, err)

	paired := 0
	sources := make([]string, 0, len(pairs))

	for _, pair := range pairs {
		sources = append(sources, filepath.ToSlash(string(pair.Source)))
		if pair.Companion.Found {
			paired++
		}
	}

	assert.Len(t, pairs, 14)
	assert.Equal(t, 11, paired)
	assert.NotContains(t, sources, examplesRoot+"/dotfiles/.h")
	assert.NotContains(t, sources, examplesRoot+"/basic/README.txt")
	assert.IsIncreasing(t, sources)
}
