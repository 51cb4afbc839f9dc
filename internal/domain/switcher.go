package domain

import (
	"context"
	"fmt"
	"log/slog"

	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

// Switcher moves an editor from the active document to its companion.
type Switcher interface {
	// SwitchToCompanion focuses an open view of the companion or opens a new
	// one. A missing document, location or companion is a silent no-op.
	SwitchToCompanion(ctx context.Context, docs host.DocumentHost) (m.SwitchOutcome, error)
}

type switcher struct {
	resolver CompanionResolver
}

// NewSwitcher constructs a Switcher backed by resolver.
func NewSwitcher(resolver CompanionResolver) Switcher {
	return &switcher{resolver: resolver}
}

func (s *switcher) SwitchToCompanion(ctx context.Context, docs host.DocumentHost) (m.SwitchOutcome, error) {
	active, ok := docs.ActiveDocument()
	if !ok || !active.HasLocation() {
		return m.OutcomeNone, nil
	}

	companion := s.resolver.Resolve(ctx, active.Location)
	if !companion.Found {
		return m.OutcomeNone, nil
	}

	for _, doc := range docs.Documents() {
		if !doc.HasLocation() || doc.Location != companion.Path {
			continue
		}

		if docs.FocusDocument(doc.ID) {
			slog.Debug("focused open companion", "from", active.Location, "to", companion.Path, "id", doc.ID)
			return m.OutcomeFocused, nil
		}
	}

	if err := docs.OpenLocation(ctx, companion.Path); err != nil {
		slog.Error("Failed to open companion", "path", companion.Path, "error", err)
		return m.OutcomeNone, fmt.Errorf("open companion %s: %w", companion.Path, err)
	}

	slog.Debug("opened companion", "from", active.Location, "to", companion.Path)

	return m.OutcomeOpened, nil
}
