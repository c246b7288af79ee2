package core

// Action is a player intent decoded from a key or mouse event. The
// simulation only ever sees actions, never raw input.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionFire // Carries the aimed cell in InputFrame.AimX/AimY
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionFire:    "Fire",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the input of one tick. Left and Right mean "held during
// this tick"; every other action is a single press.
type InputFrame struct {
	Actions map[Action]bool

	// AimX and AimY are the clicked screen cell of a Fire action.
	AimX, AimY int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records a for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetFire records a fireball aimed at screen cell (x, y).
func (f *InputFrame) SetFire(x, y int) {
	f.Set(ActionFire)
	f.AimX, f.AimY = x, y
}

// Has reports whether a was recorded this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame for the next tick, keeping its map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.AimX, f.AimY = 0, 0
}
