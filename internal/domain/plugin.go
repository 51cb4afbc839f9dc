package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

var (
	// ErrAlreadyActive is returned when activating an active plugin.
	ErrAlreadyActive = errors.New("plugin already active")
	// ErrNotActive is returned when deactivating an inactive plugin.
	ErrNotActive = errors.New("plugin not active")
)

// DefaultAccelerator is the key that triggers the switch action.
const DefaultAccelerator = "ctrl+r"

// OpenHeaderAction returns the action descriptor contributed to the window.
func OpenHeaderAction(accelerator string) m.Action {
	if strings.TrimSpace(accelerator) == "" {
		accelerator = DefaultAccelerator
	}

	return m.Action{
		Name:        "OpenHeaderAction",
		Label:       "Open _Header/Body",
		Accelerator: accelerator,
		Tooltip:     "Open the corresponding header/body file",
	}
}

// PluginOption is a functional option for NewPlugin.
type PluginOption func(*openHeaderPlugin)

// WithAccelerator overrides the key bound to the switch action.
func WithAccelerator(accelerator string) PluginOption {
	return func(p *openHeaderPlugin) {
		p.action = OpenHeaderAction(accelerator)
	}
}

type openHeaderPlugin struct {
	switcher Switcher
	action   m.Action

	mu      sync.Mutex
	window  host.Window
	mergeID host.MergeID
}

// NewPlugin builds the header/body plugin around switcher.
func NewPlugin(switcher Switcher, options ...PluginOption) host.Plugin {
	p := &openHeaderPlugin{
		switcher: switcher,
		action:   OpenHeaderAction(DefaultAccelerator),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Activate registers the switch action on window.
func (p *openHeaderPlugin) Activate(_ context.Context, window host.Window) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.window != nil {
		return ErrAlreadyActive
	}

	mergeID, err := window.AddAction(p.action, func(ctx context.Context) error {
		outcome, err := p.switcher.SwitchToCompanion(ctx, window)
		slog.Debug("switch action", "outcome", outcome)

		return err
	})
	if err != nil {
		return fmt.Errorf("register %s: %w", p.action.Name, err)
	}

	p.window = window
	p.mergeID = mergeID
	slog.Debug("plugin activated", "action", p.action.Name, "accelerator", p.action.Accelerator, "mergeID", mergeID)

	return nil
}

// Deactivate removes the action and releases the window.
func (p *openHeaderPlugin) Deactivate(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.window == nil {
		return ErrNotActive
	}

	window := p.window
	p.window = nil

	if err := window.RemoveAction(p.mergeID); err != nil {
		return fmt.Errorf("unregister %s: %w", p.action.Name, err)
	}

	slog.Debug("plugin deactivated", "action", p.action.Name, "mergeID", p.mergeID)

	return nil
}
