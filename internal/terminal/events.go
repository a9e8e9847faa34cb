package terminal

// EventType names an input event forwarded by a terminal client.
type EventType string

const (
	EventFocus   EventType = "focus"
	EventBlur    EventType = "blur"
	EventClick   EventType = "click"
	EventKeyDown EventType = "keydown"
	EventKeyUp   EventType = "keyup"
)

// Key names as reported by the browser's KeyboardEvent.key.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
)

// Viewport carries the client's scroll metrics in pixels.
type Viewport struct {
	ScrollTop    int `json:"scroll_top"`
	ScrollHeight int `json:"scroll_height"`
	ClientHeight int `json:"client_height"`
}

// Event is one input event. Inside is only meaningful for clicks and
// Viewport only for key-down.
type Event struct {
	Type     EventType `json:"type"`
	Key      string    `json:"key,omitempty"`
	Inside   bool      `json:"inside,omitempty"`
	Viewport Viewport  `json:"viewport"`
}

// Update tells the client how to reflect a dispatched event.
type Update struct {
	// Display is the full visible text (transcript, prompt and pending input)
	// as HTML. Empty when the view does not need re-rendering.
	Display string `json:"display,omitempty"`
	// ScrollTop, when set, is the absolute scroll position to apply.
	ScrollTop *int `json:"scroll_top,omitempty"`
	// FollowGrowth asks the client to shift its scroll position by however
	// much the content grew, keeping new lines in view.
	FollowGrowth bool `json:"follow_growth,omitempty"`
	// PreventDefault is true when the session consumed the key.
	PreventDefault bool   `json:"prevent_default"`
	Focused        bool   `json:"focused"`
	Cwd            string `json:"cwd"`
}
