package port

import (
	"context"
	"errors"

	"github.com/bnema/shades/internal/domain/entity"
)

var (
	// ErrNoListener is returned by Send when the tab has no renderer attached.
	ErrNoListener = errors.New("no renderer attached to tab")
	// ErrTabNotFound is returned when a tab id is unknown or already closed.
	ErrTabNotFound = errors.New("tab not found")
)

// TabID identifies a browser tab for the lifetime of the host.
type TabID string

// TabInfo describes a tab at the time it was queried.
type TabInfo struct {
	ID  TabID
	URL string
}

// Command is a keyboard-triggered action. Names are stable.
type Command string

const (
	CommandToggleExtension Command = "toggle-extension"
	CommandToggleFilter    Command = "toggle-filter"
	CommandToggleInvert    Command = "toggle-invert"
)

// Commands lists every known command in display order.
func Commands() []Command {
	return []Command{CommandToggleExtension, CommandToggleFilter, CommandToggleInvert}
}

// ParseCommand validates a command name.
func ParseCommand(s string) (Command, bool) {
	for _, c := range Commands() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// HostEventKind classifies events emitted by a TabHost.
type HostEventKind int

const (
	EventTabActivated HostEventKind = iota
	EventNavigationCompleted
	EventCommand
)

func (k HostEventKind) String() string {
	switch k {
	case EventTabActivated:
		return "tab-activated"
	case EventNavigationCompleted:
		return "navigation-completed"
	case EventCommand:
		return "command"
	default:
		return "unknown"
	}
}

// HostEvent is one browser event delivered to the coordinator.
// TabID is set for tab events; Command is set for command events.
type HostEvent struct {
	Kind    HostEventKind
	TabID   TabID
	Command Command
}

// TabHost abstracts tab enumeration and the coordinator to renderer transport.
type TabHost interface {
	// ActiveTab returns the foreground tab, or false when there is none.
	ActiveTab(ctx context.Context) (TabInfo, bool, error)

	// Tab returns the current state of a tab.
	// Returns ErrTabNotFound when the tab is gone.
	Tab(ctx context.Context, id TabID) (TabInfo, error)

	// Send delivers msg to the tab's renderer.
	// Returns ErrNoListener when no renderer is attached.
	Send(ctx context.Context, id TabID, msg entity.RenderMessage) error

	// Reload performs a full reload of the tab.
	Reload(ctx context.Context, id TabID) error

	// Events streams host events. The channel closes when the host stops.
	Events() <-chan HostEvent
}
