// Package host defines the contract between the companion switcher and the
// editor that embeds it. An editor exposes its open documents through
// DocumentHost and accepts contributed actions through Window.
package host

import (
	"context"

	m "openheader.dev/pkg/openheader/internal/model"
)

// DocumentHost is the part of an editor window the companion switcher needs.
type DocumentHost interface {
	// ActiveDocument returns the focused document, if there is one.
	ActiveDocument() (m.Document, bool)

	// Documents returns every open document in the window's order.
	Documents() []m.Document

	// FocusDocument brings the view of the document with id to the front.
	// It returns false when the document has no view to focus.
	FocusDocument(id string) bool

	// OpenLocation opens a new view for path and focuses it.
	OpenLocation(ctx context.Context, path m.Path) error
}

// ActionHandler runs when the user triggers a contributed action.
type ActionHandler func(ctx context.Context) error

// MergeID identifies an action registration so it can be removed again.
type MergeID uint

// Window is a DocumentHost that also accepts contributed actions.
type Window interface {
	DocumentHost

	// AddAction installs action and its handler, returning the registration id.
	AddAction(action m.Action, handler ActionHandler) (MergeID, error)

	// RemoveAction undoes a registration made by AddAction.
	RemoveAction(id MergeID) error
}

// Plugin is an extension activated on a window and deactivated before the
// window goes away. It may hold the window only while active.
type Plugin interface {
	Activate(ctx context.Context, window Window) error
	Deactivate(ctx context.Context) error
}
