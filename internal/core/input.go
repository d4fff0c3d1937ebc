package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move ship up
	ActionDown           // S, Down arrow - move ship down
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - fire current weapon
	ActionStart          // Enter - leave the title screen / retry loading
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Holdable reports whether the action describes a held key (movement, fire)
// rather than a one-shot request (pause, restart).
func (a Action) Holdable() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains every action that is held or was triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldInput emulates held keys on terminals, which report key presses
// (and auto-repeat) but never key releases. A press keeps a holdable action
// alive for a fixed number of ticks; the terminal's auto-repeat refreshes it
// while the key is physically down. One-shot actions last a single frame.
type HeldInput struct {
	holdTicks int
	held      map[Action]int
	once      InputFrame
}

// NewHeldInput creates a held-key tracker that keeps actions alive for holdTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldInput{
		holdTicks: holdTicks,
		held:      make(map[Action]int),
		once:      NewInputFrame(),
	}
}

// Press records a key press for the action.
func (h *HeldInput) Press(a Action) {
	if a == ActionNone {
		return
	}
	if a.Holdable() {
		h.held[a] = h.holdTicks
		return
	}
	h.once.Set(a)
}

// Frame builds the input frame for the next tick and ages held actions.
func (h *HeldInput) Frame() InputFrame {
	frame := h.once.Clone()
	h.once.Clear()

	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = left - 1
	}
	return frame
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	for a := range h.held {
		delete(h.held, a)
	}
	h.once.Clear()
}
