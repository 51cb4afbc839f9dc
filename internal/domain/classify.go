package domain

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
	m "openheader.dev/pkg/openheader/internal/model"
)

const separators = "/" + string(os.PathSeparator)

// Extension vocabulary, in the order candidates are tried.
var (
	headerExtensions         = []string{".h", ".hpp"}
	implementationExtensions = []string{".c", ".cpp"}
)

// Classify maps a file extension (with its leading dot) to its class.
// Matching ignores case.
func Classify(ext string) m.ExtensionClass {
	folded := cases.Fold().String(ext)

	for _, candidate := range headerExtensions {
		if folded == candidate {
			return m.ClassHeader
		}
	}

	for _, candidate := range implementationExtensions {
		if folded == candidate {
			return m.ClassImplementation
		}
	}

	return m.ClassNone
}

// CandidateExtensions returns the companion extensions for class in lookup
// order. ClassNone has no candidates.
func CandidateExtensions(class m.ExtensionClass) []string {
	var candidates []string

	switch class {
	case m.ClassHeader:
		candidates = implementationExtensions
	case m.ClassImplementation:
		candidates = headerExtensions
	case m.ClassNone:
		return nil
	}

	return append([]string(nil), candidates...)
}

// ClassifyPath classifies the extension of the last element of path.
func ClassifyPath(path m.Path) m.ExtensionClass {
	_, ext := splitExt(string(path))

	return Classify(ext)
}

// splitExt splits path into root and extension at the final dot of its last
// element. Leading dots of the last element never start an extension, so
// ".h" has no extension.
func splitExt(path string) (string, string) {
	sep := strings.LastIndexAny(path, separators)

	dot := strings.LastIndexByte(path, '.')
	if dot <= sep {
		return path, ""
	}

	for i := sep + 1; i < dot; i++ {
		if path[i] != '.' {
			return path[:dot], path[dot:]
		}
	}

	return path, ""
}
