package rodhost

import (
	_ "embed"
	"fmt"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/shortcut"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// bindingName is the runtime binding the bridge script reports through.
const bindingName = "__shades_bridge"

//go:embed bridge.js
var bridgeJS string

// Binding maps an accelerator to a command.
type Binding struct {
	Command port.Command         `json:"command"`
	Accel   shortcut.Accelerator `json:"accel"`
}

// ParseBindings builds bindings from accelerator strings keyed by command.
// Empty accelerators disable their command.
func ParseBindings(accels map[port.Command]string) ([]Binding, error) {
	out := make([]Binding, 0, len(accels))
	for _, cmd := range port.Commands() {
		raw := accels[cmd]
		if raw == "" {
			continue
		}
		acc, err := shortcut.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("keybinding for %s: %w", cmd, err)
		}
		out = append(out, Binding{Command: cmd, Accel: acc})
	}
	return out, nil
}

// BridgeScript returns the page script capturing bindings. Evaluating it again
// in the same document only replaces the bindings.
func BridgeScript(bindings []Binding) (string, error) {
	if bindings == nil {
		bindings = []Binding{}
	}
	data, err := json.Marshal(bindings)
	if err != nil {
		return "", fmt.Errorf("failed to encode keybindings: %w", err)
	}
	return fmt.Sprintf("%s(%s);", bridgeJS, data), nil
}

// bridgeMessage is a payload sent through the binding.
type bridgeMessage struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

// parseBridgeMessage turns a binding payload into a host event for tab.
func parseBridgeMessage(tab port.TabID, payload string) (port.HostEvent, error) {
	var msg bridgeMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return port.HostEvent{}, fmt.Errorf("failed to decode bridge payload: %w", err)
	}
	switch msg.Type {
	case "visible":
		return port.HostEvent{Kind: port.EventTabActivated, TabID: tab}, nil
	case "command":
		cmd, ok := port.ParseCommand(msg.Command)
		if !ok {
			return port.HostEvent{}, fmt.Errorf("unknown bridge command %q", msg.Command)
		}
		return port.HostEvent{Kind: port.EventCommand, TabID: tab, Command: cmd}, nil
	default:
		return port.HostEvent{}, fmt.Errorf("unknown bridge message type %q", msg.Type)
	}
}
