// Package rodhost drives a Chromium instance over the DevTools protocol and
// exposes its tabs as a port.TabHost.
package rodhost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/logging"
	"github.com/bnema/shades/internal/renderer"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const eventBuffer = 64

// Options configures the browser host.
type Options struct {
	// RemoteURL attaches to a running browser instead of launching one.
	RemoteURL string
	// Bin overrides the browser executable.
	Bin string
	// UserDataDir keeps the browser profile between runs. Empty uses a temp dir.
	UserDataDir string
	Headless    bool
	Bindings    []Binding
}

// tab is one tracked page. rend is nil until a document commits after tracking.
type tab struct {
	page      *rod.Page
	rend      *renderer.Renderer
	removeDoc func() error
}

// Host is a port.TabHost over a rod browser.
type Host struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	resolver renderer.Resolver
	events   chan port.HostEvent
	newDoc   func(*rod.Page) port.Document

	mu     sync.Mutex
	script string
	tabs   map[port.TabID]*tab
	order  []port.TabID
	active port.TabID
}

var _ port.TabHost = (*Host)(nil)

// Start launches or connects to the browser. Call Run to begin tracking tabs.
func Start(ctx context.Context, opts Options, resolver renderer.Resolver) (*Host, error) {
	log := logging.FromContext(ctx)

	script, err := BridgeScript(opts.Bindings)
	if err != nil {
		return nil, err
	}

	h := &Host{
		resolver: resolver,
		events:   make(chan port.HostEvent, eventBuffer),
		newDoc:   newPageDocument,
		script:   script,
		tabs:     make(map[port.TabID]*tab),
	}

	controlURL := opts.RemoteURL
	if controlURL == "" {
		l := launcher.New().Headless(opts.Headless)
		if opts.Bin != "" {
			l = l.Bin(opts.Bin)
		}
		if opts.UserDataDir != "" {
			l = l.UserDataDir(opts.UserDataDir)
		}
		u, err := l.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
		controlURL = u
		h.launcher = l
		log.Info().Str("url", controlURL).Bool("headless", opts.Headless).Msg("launched browser")
	} else {
		log.Info().Str("url", controlURL).Msg("connecting to remote browser")
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		h.cleanupLauncher()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	h.browser = b
	return h, nil
}

// Run tracks existing and new tabs until ctx is done or the browser goes away.
func (h *Host) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "rodhost")
	log := logging.FromContext(ctx)

	if err := (proto.TargetSetDiscoverTargets{Discover: true}).Call(h.browser); err != nil {
		return fmt.Errorf("failed to enable target discovery: %w", err)
	}

	pages, err := h.browser.Pages()
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}
	for _, p := range pages {
		// already loaded: no renderer until the next load
		h.track(ctx, p, true)
	}
	log.Debug().Int("tabs", len(pages)).Msg("tracking existing tabs")

	wait := h.browser.Context(ctx).EachEvent(
		func(e *proto.TargetTargetCreated) {
			if e.TargetInfo.Type != proto.TargetTargetInfoTypePage {
				return
			}
			p, err := h.browser.PageFromTarget(e.TargetInfo.TargetID)
			if err != nil {
				log.Debug().Err(err).Str("target", string(e.TargetInfo.TargetID)).Msg("failed to attach to new tab")
				return
			}
			h.track(ctx, p, false)
		},
		func(e *proto.TargetTargetDestroyed) {
			h.forget(port.TabID(e.TargetID))
		},
	)
	wait()

	if ctx.Err() != nil {
		return nil
	}
	return errors.New("browser connection closed")
}

// Open creates a tab with the bridge installed, then navigates it to rawURL.
func (h *Host) Open(ctx context.Context, rawURL string) (port.TabID, error) {
	p, err := h.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return "", fmt.Errorf("failed to create tab: %w", err)
	}
	id := h.track(ctx, p, false)
	if err := p.Context(ctx).Navigate(rawURL); err != nil {
		return id, fmt.Errorf("failed to navigate to %s: %w", rawURL, err)
	}
	h.setActive(id)
	return id, nil
}

// track installs the bridge in p and follows its loads and bridge messages.
// existing marks a page whose document loaded before tracking.
func (h *Host) track(ctx context.Context, p *rod.Page, existing bool) port.TabID {
	id := port.TabID(p.TargetID)
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	h.mu.Lock()
	if _, ok := h.tabs[id]; ok {
		h.mu.Unlock()
		return id
	}
	t := &tab{page: p}
	h.tabs[id] = t
	h.order = append(h.order, id)
	script := h.script
	h.mu.Unlock()

	if err := (proto.RuntimeAddBinding{Name: bindingName}).Call(p); err != nil {
		log.Warn().Err(err).Msg("failed to add bridge binding")
	}
	remove, err := p.EvalOnNewDocument(script)
	if err != nil {
		log.Warn().Err(err).Msg("failed to install bridge script")
	} else {
		h.mu.Lock()
		t.removeDoc = remove
		h.mu.Unlock()
	}
	if existing {
		if _, err := p.Eval("() => {" + script + "}"); err != nil {
			log.Debug().Err(err).Msg("failed to install bridge in current document")
		}
	}

	go p.Context(ctx).EachEvent(
		func(e *proto.PageFrameNavigated) {
			if isMainFrameCommit(e) {
				h.committed(ctx, id, p, e.Frame.URL)
			}
		},
		func(*proto.PageLoadEventFired) {
			info, err := p.Info()
			if err != nil {
				log.Debug().Err(err).Msg("failed to read tab info after load")
				return
			}
			h.loaded(ctx, id, p, info.URL)
		},
		func(e *proto.RuntimeBindingCalled) {
			if e.Name == bindingName {
				h.onBridge(ctx, id, e.Payload)
			}
		},
	)()

	log.Debug().Bool("existing", existing).Msg("tab tracked")
	return id
}

// isMainFrameCommit reports a top-level document commit. Subframes keep the
// renderer of their page.
func isMainFrameCommit(e *proto.PageFrameNavigated) bool {
	return e.Frame != nil && e.Frame.ParentID == ""
}

// committed gives the new document its renderer and lets it self-resolve
// while the page is still loading.
func (h *Host) committed(ctx context.Context, id port.TabID, p *rod.Page, pageURL string) {
	rend := renderer.New(h.newDoc(p), h.resolver)

	h.mu.Lock()
	t, ok := h.tabs[id]
	if ok {
		t.rend = rend
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	rend.Attach(logging.WithURL(ctx, pageURL), pageURL)
}

// loaded reports navigation-completed. A document whose commit was missed
// is attached here instead.
func (h *Host) loaded(ctx context.Context, id port.TabID, p *rod.Page, pageURL string) {
	h.mu.Lock()
	t, ok := h.tabs[id]
	missed := ok && t.rend == nil
	h.mu.Unlock()
	if !ok {
		return
	}
	if missed {
		h.committed(ctx, id, p, pageURL)
	}

	h.emit(ctx, port.HostEvent{Kind: port.EventNavigationCompleted, TabID: id})
}

func (h *Host) onBridge(ctx context.Context, id port.TabID, payload string) {
	ev, err := parseBridgeMessage(id, payload)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("ignoring bridge message")
		return
	}
	h.setActive(id)
	h.emit(ctx, ev)
}

func (h *Host) emit(ctx context.Context, ev port.HostEvent) {
	select {
	case h.events <- ev:
	case <-ctx.Done():
	}
}

func (h *Host) setActive(id port.TabID) {
	h.mu.Lock()
	h.active = id
	h.mu.Unlock()
}

func (h *Host) forget(id port.TabID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.tabs, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	if h.active == id {
		h.active = ""
	}
}

func (h *Host) lookup(id port.TabID) (*tab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.tabs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrTabNotFound, id)
	}
	return t, nil
}

// ActiveTab returns the tab that last reported focus, or the newest tab.
func (h *Host) ActiveTab(ctx context.Context) (port.TabInfo, bool, error) {
	h.mu.Lock()
	id := h.active
	if id == "" && len(h.order) > 0 {
		id = h.order[len(h.order)-1]
	}
	h.mu.Unlock()

	if id == "" {
		return port.TabInfo{}, false, nil
	}
	info, err := h.Tab(ctx, id)
	if errors.Is(err, port.ErrTabNotFound) {
		return port.TabInfo{}, false, nil
	}
	if err != nil {
		return port.TabInfo{}, false, err
	}
	return info, true, nil
}

// Tab returns the current URL of a tab.
func (h *Host) Tab(ctx context.Context, id port.TabID) (port.TabInfo, error) {
	t, err := h.lookup(id)
	if err != nil {
		return port.TabInfo{}, err
	}
	info, err := t.page.Context(ctx).Info()
	if err != nil {
		return port.TabInfo{}, fmt.Errorf("%w: %s: %v", port.ErrTabNotFound, id, err)
	}
	return port.TabInfo{ID: id, URL: info.URL}, nil
}

// Send delivers msg to the tab's renderer.
func (h *Host) Send(ctx context.Context, id port.TabID, msg entity.RenderMessage) error {
	t, err := h.lookup(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	rend := t.rend
	h.mu.Unlock()
	if rend == nil {
		return port.ErrNoListener
	}
	return rend.Handle(ctx, msg)
}

// Reload reloads the tab; its renderer is replaced when the new document commits.
func (h *Host) Reload(ctx context.Context, id port.TabID) error {
	t, err := h.lookup(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	t.rend = nil
	h.mu.Unlock()

	if err := t.page.Context(ctx).Reload(); err != nil {
		return fmt.Errorf("failed to reload tab %s: %w", id, err)
	}
	return nil
}

// Events streams host events. The channel is never closed; stop on ctx instead.
func (h *Host) Events() <-chan port.HostEvent {
	return h.events
}

// SetBindings replaces the keyboard bindings in every tracked tab and in
// documents created afterwards.
func (h *Host) SetBindings(ctx context.Context, bindings []Binding) error {
	script, err := BridgeScript(bindings)
	if err != nil {
		return err
	}

	type installed struct {
		t      *tab
		remove func() error
	}

	h.mu.Lock()
	h.script = script
	tabs := make([]installed, 0, len(h.tabs))
	for _, t := range h.tabs {
		tabs = append(tabs, installed{t: t, remove: t.removeDoc})
	}
	h.mu.Unlock()

	log := logging.FromContext(ctx)
	for _, it := range tabs {
		if it.remove != nil {
			if err := it.remove(); err != nil {
				log.Debug().Err(err).Msg("failed to remove old bridge script")
			}
		}
		remove, err := it.t.page.EvalOnNewDocument(script)
		if err != nil {
			log.Debug().Err(err).Msg("failed to install bridge script")
			continue
		}
		h.mu.Lock()
		it.t.removeDoc = remove
		h.mu.Unlock()
		if _, err := it.t.page.Context(ctx).Eval("() => {" + script + "}"); err != nil {
			log.Debug().Err(err).Msg("failed to update bridge in current document")
		}
	}
	log.Info().Int("bindings", len(bindings)).Msg("keybindings updated")
	return nil
}

// Close disconnects from the browser and stops it if it was launched here.
func (h *Host) Close() error {
	var err error
	if h.browser != nil && h.launcher != nil {
		err = h.browser.Close()
	}
	h.cleanupLauncher()
	return err
}

func (h *Host) cleanupLauncher() {
	if h.launcher != nil {
		h.launcher.Cleanup()
		h.launcher = nil
	}
}
