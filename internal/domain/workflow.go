package domain

import (
	"context"
	"fmt"

	"openheader.dev/pkg/openheader/internal/adapter"
	"openheader.dev/pkg/openheader/internal/controller"
	m "openheader.dev/pkg/openheader/internal/model"
)

// ResolveArgs contains the arguments for printing a companion path.
type ResolveArgs struct {
	Path m.Path
}

// OpenArgs contains the arguments for opening a companion in an editor.
type OpenArgs struct {
	Path   m.Path
	Editor string
}

// SessionArgs contains the arguments for the interactive session.
type SessionArgs struct {
	Paths      []m.Path
	Keybinding string
}

// Workflow is the use-case layer behind the CLI commands.
type Workflow interface {
	Resolve(ctx context.Context, args ResolveArgs) error
	Open(ctx context.Context, args OpenArgs) error
	List(ctx context.Context, args ListArgs) error
	Session(ctx context.Context, args SessionArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	launcher adapter.EditorLauncher
	ui       controller.UI
	resolver CompanionResolver
	switcher Switcher
	lister   PairLister
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	launcher adapter.EditorLauncher,
	ui controller.UI,
	resolver CompanionResolver,
	switcher Switcher,
	lister PairLister,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		launcher:        launcher,
		ui:              ui,
		resolver:        resolver,
		switcher:        switcher,
		lister:          lister,
	}
}

func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	companion := w.resolver.Resolve(ctx, args.Path)

	return w.ui.DisplayCompanion(ctx, args.Path, companion)
}

func (w *workflow) Open(ctx context.Context, args OpenArgs) error {
	launchHost := adapter.NewLaunchHost(args.Path, w.launcher, args.Editor)

	if _, err := w.switcher.SwitchToCompanion(ctx, launchHost); err != nil {
		return fmt.Errorf("open companion: %w", err)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	pairs, err := w.lister.List(ctx, args)
	if err != nil {
		return fmt.Errorf("list pairs: %w", err)
	}

	return w.ui.DisplayPairs(ctx, pairs)
}

func (w *workflow) Session(ctx context.Context, args SessionArgs) error {
	workspace := adapter.NewWorkspace(w.SourceFSAdapter)

	for _, path := range args.Paths {
		abs, err := w.AbsPath(ctx, path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		if err := workspace.OpenLocation(ctx, abs); err != nil {
			return err
		}
	}

	if len(args.Paths) == 0 {
		workspace.AddScratch("")
	} else {
		// The first file given is the one the session starts on.
		workspace.FocusDocument(workspace.Documents()[0].ID)
	}

	plugin := NewPlugin(w.switcher, WithAccelerator(args.Keybinding))

	return w.ui.RunSession(ctx, workspace, plugin)
}
