// Package coordinator keeps every open tab's rendering in sync with the
// settings store: it pushes instructions on navigation, tab activation,
// settings changes and keyboard commands.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/entity"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/logging"
)

// Resolver turns a page URL into the instruction its renderer should run.
type Resolver interface {
	ForURL(ctx context.Context, rawURL string) (entity.Decision, error)
	Instruction(decision entity.Decision) entity.RenderMessage
}

// CommandExecutor runs keyboard commands against a page URL.
type CommandExecutor interface {
	Execute(ctx context.Context, cmd port.Command, rawURL string) error
}

// ChangeSource reports settings store writes.
type ChangeSource interface {
	Watch(ctx context.Context) (<-chan entity.SettingsChange, error)
}

// Coordinator reacts to host events and store changes.
// It holds no per-tab state; every push re-reads the store.
type Coordinator struct {
	host       port.TabHost
	resolver   Resolver
	commands   CommandExecutor
	changes    ChangeSource
	restricted []string
}

// New creates a coordinator. A nil restricted list uses the default schemes.
func New(host port.TabHost, resolver Resolver, commands CommandExecutor, changes ChangeSource, restricted []string) *Coordinator {
	return &Coordinator{
		host:       host,
		resolver:   resolver,
		commands:   commands,
		changes:    changes,
		restricted: restricted,
	}
}

// Run processes events until ctx is cancelled or the host event stream closes.
func (c *Coordinator) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "coordinator")
	log := logging.FromContext(ctx)

	changes, err := c.changes.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch settings: %w", err)
	}
	events := c.host.Events()

	log.Info().Msg("coordinator started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("coordinator stopped")
			return nil
		case ev, ok := <-events:
			if !ok {
				log.Info().Msg("host event stream closed")
				return nil
			}
			c.HandleEvent(ctx, ev)
		case change, ok := <-changes:
			if !ok {
				log.Warn().Msg("settings change feed closed, store changes will no longer propagate")
				changes = nil
				continue
			}
			if !change.AffectsFilters() {
				continue
			}
			log.Debug().Strs("keys", change.Keys).Msg("settings changed")
			c.PushActive(ctx)
		}
	}
}

// HandleEvent dispatches one host event.
func (c *Coordinator) HandleEvent(ctx context.Context, ev port.HostEvent) {
	log := logging.FromContext(ctx)
	log.Debug().Stringer("event", ev.Kind).Str("tab", string(ev.TabID)).Msg("host event")

	switch ev.Kind {
	case port.EventTabActivated, port.EventNavigationCompleted:
		c.Push(ctx, ev.TabID)
	case port.EventCommand:
		c.runCommand(ctx, ev.Command)
	}
}

func (c *Coordinator) runCommand(ctx context.Context, cmd port.Command) {
	log := logging.FromContext(ctx).With().Str("command", string(cmd)).Logger()

	tab, ok, err := c.host.ActiveTab(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to query active tab")
		return
	}
	if cmd != port.CommandToggleExtension && (!ok || c.skip(tab.URL)) {
		log.Debug().Str("url", tab.URL).Msg("command ignored on this page")
		return
	}

	if err := c.commands.Execute(ctx, cmd, tab.URL); err != nil {
		log.Warn().Err(err).Msg("command failed")
		return
	}
	if ok {
		c.Push(ctx, tab.ID)
	}
}

// PushActive pushes the active tab, if any.
func (c *Coordinator) PushActive(ctx context.Context) {
	tab, ok, err := c.host.ActiveTab(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to query active tab")
		return
	}
	if ok {
		c.Push(ctx, tab.ID)
	}
}

// Push resolves the tab's URL and sends the result to its renderer.
// A tab that cannot receive the message is reloaded so its renderer attaches
// and self-resolves; failures are logged only.
func (c *Coordinator) Push(ctx context.Context, id port.TabID) {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	tab, err := c.host.Tab(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrTabNotFound) {
			log.Debug().Msg("tab gone before push")
		} else {
			log.Warn().Err(err).Msg("failed to query tab")
		}
		return
	}
	if c.skip(tab.URL) {
		return
	}

	decision, err := c.resolver.ForURL(ctx, tab.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", tab.URL).Msg("resolve failed, keeping current rendering")
		return
	}

	msg := c.resolver.Instruction(decision)
	if err := c.host.Send(ctx, id, msg); err != nil {
		log.Debug().Err(err).Str("action", string(msg.Action)).Msg("send failed, reloading tab")
		if err := c.host.Reload(ctx, id); err != nil {
			log.Warn().Err(err).Msg("reload failed")
		}
		return
	}
	log.Debug().Str("action", string(msg.Action)).Stringer("decision", decision).Msg("pushed")
}

func (c *Coordinator) skip(rawURL string) bool {
	return rawURL == "" || domainurl.IsRestrictedURL(rawURL, c.restricted)
}
