// Package adapter contains filesystem, editor and workspace adapters for the
// openheader CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "openheader.dev/pkg/openheader/internal/model"
)

// recursiveSuffix marks a Go-style recursive path pattern (./...).
const recursiveSuffix = "..."

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when probing for companions and scanning directories. It hides
// direct `os` access so resolution logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Expand turns user supplied paths and ./... patterns into a sorted list
	// of regular files, dropping every path matched by an exclude regex.
	Expand(ctx context.Context, paths []m.Path, exclude []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// IsRegularFile reports whether path names an existing regular file.
	// Any error while probing counts as "does not exist".
	IsRegularFile(ctx context.Context, path m.Path) bool

	// AbsPath returns an absolute, cleaned version of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Expand resolves plain files, directories and ./... patterns into files.
func (a *LocalSourceFSAdapter) Expand(ctx context.Context, paths []m.Path, exclude []string) ([]m.Path, error) {
	excludeRegexps, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	collect := func(path string) {
		if isExcluded(path, excludeRegexps) {
			return
		}

		p := m.Path(path)
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, path := range paths {
		root, recursive := splitPattern(string(path))

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			collect(root)
			continue
		}

		err = a.Walk(ctx, m.Path(root), recursive, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.Mode().IsRegular() {
				collect(p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// IsRegularFile follows symlinks, so a link to a regular file counts.
func (a *LocalSourceFSAdapter) IsRegularFile(_ context.Context, path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// splitPattern strips a trailing /... and reports whether it was present.
func splitPattern(path string) (string, bool) {
	if path == recursiveSuffix {
		return ".", true
	}

	trimmed := strings.TrimSuffix(path, recursiveSuffix)
	if trimmed == path {
		return path, false
	}

	trimmed = strings.TrimRight(trimmed, string(filepath.Separator)+"/")
	if trimmed == "" {
		if filepath.IsAbs(path) {
			return string(filepath.Separator), true
		}

		trimmed = "."
	}

	return trimmed, true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
