package rodhost

import (
	"context"
	"fmt"

	"github.com/bnema/shades/internal/application/port"
	"github.com/go-rod/rod"
)

const (
	removeElementJS = `(id) => {
		document.querySelectorAll('[id="' + id + '"]').forEach((el) => el.remove());
	}`
	appendStyleJS = `(id, css) => {
		const el = document.createElement('style');
		el.id = id;
		el.textContent = css;
		(document.head || document.documentElement).appendChild(el);
	}`
	appendOverlayJS = `(id) => {
		const el = document.createElement('div');
		el.id = id;
		(document.body || document.documentElement).appendChild(el);
	}`
)

// pageDocument is a port.Document over the live document of a rod page.
type pageDocument struct {
	page *rod.Page
}

var _ port.Document = (*pageDocument)(nil)

func newPageDocument(p *rod.Page) port.Document {
	return &pageDocument{page: p}
}

func (d *pageDocument) RemoveElement(ctx context.Context, id string) error {
	if _, err := d.page.Context(ctx).Eval(removeElementJS, id); err != nil {
		return fmt.Errorf("failed to remove #%s: %w", id, err)
	}
	return nil
}

func (d *pageDocument) AppendStyle(ctx context.Context, id, css string) error {
	if _, err := d.page.Context(ctx).Eval(appendStyleJS, id, css); err != nil {
		return fmt.Errorf("failed to append style #%s: %w", id, err)
	}
	return nil
}

func (d *pageDocument) AppendOverlay(ctx context.Context, id string) error {
	if _, err := d.page.Context(ctx).Eval(appendOverlayJS, id); err != nil {
		return fmt.Errorf("failed to append overlay #%s: %w", id, err)
	}
	return nil
}
