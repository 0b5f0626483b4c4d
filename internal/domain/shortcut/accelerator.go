// Package shortcut parses keyboard accelerators such as "alt+shift+f".
package shortcut

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAccelerator is returned for accelerators that cannot be matched.
var ErrInvalidAccelerator = errors.New("invalid accelerator")

// Accelerator is a key plus modifiers, matched against KeyboardEvent.key.
type Accelerator struct {
	Key   string `json:"key"`
	Alt   bool   `json:"alt"`
	Ctrl  bool   `json:"ctrl"`
	Shift bool   `json:"shift"`
	Meta  bool   `json:"meta"`
}

// Parse reads an accelerator of the form "mod+mod+key".
// Modifiers are alt, ctrl (control), shift and meta (super, cmd); the key is lowercased.
func Parse(s string) (Accelerator, error) {
	var acc Accelerator
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return acc, fmt.Errorf("%w: %q has no key", ErrInvalidAccelerator, s)
	}

	for _, mod := range parts[:len(parts)-1] {
		switch strings.TrimSpace(mod) {
		case "alt":
			acc.Alt = true
		case "ctrl", "control":
			acc.Ctrl = true
		case "shift":
			acc.Shift = true
		case "meta", "super", "cmd":
			acc.Meta = true
		default:
			return Accelerator{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidAccelerator, mod, s)
		}
	}

	acc.Key = strings.TrimSpace(parts[len(parts)-1])
	if !acc.Alt && !acc.Ctrl && !acc.Meta {
		return Accelerator{}, fmt.Errorf("%w: %q needs alt, ctrl or meta", ErrInvalidAccelerator, s)
	}
	return acc, nil
}

// String renders the accelerator in canonical modifier order.
func (a Accelerator) String() string {
	var parts []string
	if a.Ctrl {
		parts = append(parts, "ctrl")
	}
	if a.Alt {
		parts = append(parts, "alt")
	}
	if a.Shift {
		parts = append(parts, "shift")
	}
	if a.Meta {
		parts = append(parts, "meta")
	}
	return strings.Join(append(parts, a.Key), "+")
}
