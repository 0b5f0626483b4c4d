package entity

// RenderAction names a Coordinator to Renderer instruction.
type RenderAction string

const (
	ActionApplyFilter  RenderAction = "applyFilter"
	ActionRemoveFilter RenderAction = "removeFilter"
)

// RenderMessage is the instruction delivered to a tab's renderer.
type RenderMessage struct {
	Action   RenderAction   `json:"action"`
	CSS      string         `json:"css,omitempty"`
	FilterID FilterID       `json:"filterId,omitempty"`
	Settings FilterSettings `json:"settings,omitempty"`
}

// ApplyMessage builds an applyFilter instruction.
func ApplyMessage(css string, id FilterID, settings FilterSettings) RenderMessage {
	return RenderMessage{
		Action:   ActionApplyFilter,
		CSS:      css,
		FilterID: id,
		Settings: settings,
	}
}

// RemoveMessage builds a removeFilter instruction.
func RemoveMessage() RenderMessage {
	return RenderMessage{Action: ActionRemoveFilter}
}
