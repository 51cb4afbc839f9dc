// Package domain holds the companion resolution logic and the workflows the
// CLI drives on top of it.
package domain

import (
	"context"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"openheader.dev/pkg/openheader/internal/adapter"
	m "openheader.dev/pkg/openheader/internal/model"
)

// CompanionResolver finds the header for an implementation file or the
// implementation for a header, in the same directory.
type CompanionResolver interface {
	// Resolve never fails: unrecognised extensions, missing companions and
	// lookup errors all yield model.NotFound.
	Resolve(ctx context.Context, path m.Path) m.Companion
}

type companionResolver struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewCompanionResolver constructs a CompanionResolver probing through fsAdapter.
func NewCompanionResolver(fsAdapter adapter.SourceFSAdapter) CompanionResolver {
	return &companionResolver{fsAdapter: fsAdapter}
}

func (r *companionResolver) Resolve(ctx context.Context, path m.Path) m.Companion {
	root, ext := splitExt(string(path))

	class := Classify(ext)
	if class == m.ClassNone {
		slog.Debug("unrecognised extension", "path", path, "ext", ext)
		return m.NotFound
	}

	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	for _, candidate := range CandidateExtensions(class) {
		for _, variant := range []string{lower.String(candidate), upper.String(candidate)} {
			if err := ctx.Err(); err != nil {
				slog.Debug("companion lookup cancelled", "path", path, "error", err)
				return m.NotFound
			}

			companion := m.Path(root + variant)
			if r.fsAdapter.IsRegularFile(ctx, companion) {
				slog.Debug("companion found", "path", path, "companion", companion)
				return m.Found(companion)
			}
		}
	}

	slog.Debug("no companion on disk", "path", path, "class", class)

	return m.NotFound
}
