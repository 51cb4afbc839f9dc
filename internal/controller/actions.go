package controller

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

var (
	// ErrAcceleratorInUse is returned when two actions claim the same key.
	ErrAcceleratorInUse = errors.New("accelerator already bound")
	// ErrUnknownMergeID is returned when removing an action that is not registered.
	ErrUnknownMergeID = errors.New("unknown merge id")
)

type registeredAction struct {
	action  m.Action
	binding key.Binding
	handler host.ActionHandler
}

type actionRegistry struct {
	mu      sync.Mutex
	next    host.MergeID
	actions map[host.MergeID]registeredAction
}

func newActionRegistry() *actionRegistry {
	return &actionRegistry{actions: make(map[host.MergeID]registeredAction)}
}

func (r *actionRegistry) add(action m.Action, handler host.ActionHandler) (host.MergeID, error) {
	accelerator := strings.TrimSpace(action.Accelerator)
	if accelerator == "" {
		return 0, fmt.Errorf("action %s has no accelerator", action.Name)
	}

	if isReservedKey(accelerator) {
		return 0, fmt.Errorf("%w: %s is reserved by the session", ErrAcceleratorInUse, accelerator)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.actions {
		if existing.action.Accelerator == accelerator {
			return 0, fmt.Errorf("%w: %s", ErrAcceleratorInUse, accelerator)
		}
	}

	r.next++
	action.Accelerator = accelerator
	r.actions[r.next] = registeredAction{
		action:  action,
		binding: key.NewBinding(key.WithKeys(accelerator), key.WithHelp(accelerator, helpLabel(action.Label))),
		handler: handler,
	}

	return r.next, nil
}

func (r *actionRegistry) remove(id host.MergeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actions[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMergeID, id)
	}

	delete(r.actions, id)

	return nil
}

func (r *actionRegistry) match(msg tea.KeyMsg) (registeredAction, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, registered := range r.actions {
		if key.Matches(msg, registered.binding) {
			return registered, true
		}
	}

	return registeredAction{}, false
}

// list returns registrations in registration order.
func (r *actionRegistry) list() []registeredAction {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]host.MergeID, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	registered := make([]registeredAction, 0, len(ids))
	for _, id := range ids {
		registered = append(registered, r.actions[id])
	}

	return registered
}

// isReservedKey reports whether accelerator is taken by the session's own bindings,
// which are matched before any registered action.
func isReservedKey(accelerator string) bool {
	for _, binding := range defaultSessionKeyMap().bindings() {
		if slices.Contains(binding.Keys(), accelerator) {
			return true
		}
	}

	return false
}

// helpLabel drops the mnemonic marker from a menu label.
func helpLabel(label string) string {
	return strings.ReplaceAll(label, "_", "")
}

// sessionWindow is the host.Window a plugin sees during a session.
type sessionWindow struct {
	Workspace
	actions *actionRegistry
}

func newSessionWindow(workspace Workspace) *sessionWindow {
	return &sessionWindow{
		Workspace: workspace,
		actions:   newActionRegistry(),
	}
}

// AddAction implements host.Window.
func (w *sessionWindow) AddAction(action m.Action, handler host.ActionHandler) (host.MergeID, error) {
	return w.actions.add(action, handler)
}

// RemoveAction implements host.Window.
func (w *sessionWindow) RemoveAction(id host.MergeID) error {
	return w.actions.remove(id)
}
