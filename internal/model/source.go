// Package model defines the data structures shared by the resolver, the
// editor integration and the UI.
package model

// Path represents a file system path.
type Path string

// ExtensionClass groups file extensions that play the same role in a
// header/implementation pair.
type ExtensionClass int

const (
	// ClassNone marks an extension outside the header/implementation vocabulary.
	ClassNone ExtensionClass = iota
	// ClassHeader covers .h and .hpp.
	ClassHeader
	// ClassImplementation covers .c and .cpp.
	ClassImplementation
)

func (c ExtensionClass) String() string {
	switch c {
	case ClassHeader:
		return "header"
	case ClassImplementation:
		return "implementation"
	case ClassNone:
		return "none"
	}

	return "unknown"
}

// Companion is the outcome of a companion lookup. The zero value is NotFound.
type Companion struct {
	Path  Path
	Found bool
}

// NotFound is returned when no companion exists or the source extension is
// not recognised. Callers cannot tell the two apart.
var NotFound = Companion{}

// Found wraps an existing companion path.
func Found(path Path) Companion {
	return Companion{Path: path, Found: true}
}

// Pair links a recognised source file to its companion, if any.
type Pair struct {
	Source    Path
	Class     ExtensionClass
	Companion Companion
}
