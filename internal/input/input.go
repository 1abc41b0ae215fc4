// Package input holds the per-frame button record hosts fill in and the game reads.
package input

const (
	ControllerCount = 5
	ButtonCount     = 12

	// KeyboardController is the controller slot hosts use for keyboard input.
	KeyboardController = 0
)

// Button indexes Controller.Buttons.
type Button int

const (
	MoveUp Button = iota
	MoveDown
	MoveLeft
	MoveRight
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	LeftShoulder
	RightShoulder
	Back
	Start
)

var buttonNames = [ButtonCount]string{
	"move_up", "move_down", "move_left", "move_right",
	"action_up", "action_down", "action_left", "action_right",
	"left_shoulder", "right_shoulder", "back", "start",
}

func (b Button) String() string {
	if b < 0 || int(b) >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// ButtonState is one button over one frame: how often it changed and where it ended.
type ButtonState struct {
	HalfTransitionCount int32
	EndedDown           bool
}

// Controller is one input device. Stick values are carried for hosts that have them;
// movement only reads the four move buttons.
type Controller struct {
	IsConnected   bool
	IsAnalog      bool
	StickAverageX float32
	StickAverageY float32
	Buttons       [ButtonCount]ButtonState
}

// Frame is everything the game learns about input for one update.
type Frame struct {
	DtForFrame  float32 // seconds
	Controllers [ControllerCount]Controller
}

// ProcessKeyPress records a button's state for this frame. A change of state counts as
// one half transition; repeating the current state does nothing.
func (c *Controller) ProcessKeyPress(b Button, isDown bool) {
	state := &c.Buttons[b]
	if state.EndedDown != isDown {
		state.EndedDown = isDown
		state.HalfTransitionCount++
	}
}

func (c *Controller) IsDown(b Button) bool {
	return c.Buttons[b].EndedDown
}

// WasPressed reports a press that began during the frame.
func (c *Controller) WasPressed(b Button) bool {
	s := c.Buttons[b]
	return s.HalfTransitionCount > 1 || (s.HalfTransitionCount == 1 && s.EndedDown)
}

// NewFrame starts the next frame from the previous one: buttons stay where they ended,
// transition counts start over.
func (f *Frame) NewFrame(dt float32) Frame {
	next := Frame{DtForFrame: dt}
	for i := range f.Controllers {
		old := &f.Controllers[i]
		nc := &next.Controllers[i]
		nc.IsConnected = old.IsConnected
		nc.IsAnalog = old.IsAnalog
		for b := range old.Buttons {
			nc.Buttons[b].EndedDown = old.Buttons[b].EndedDown
		}
	}
	return next
}

// MoveDirection turns the move buttons into a direction with +y up. Opposing buttons do
// not cancel: down wins over up and right wins over left. Diagonals are not normalized.
func MoveDirection(c *Controller) (dx, dy float32) {
	if c.IsDown(MoveUp) {
		dy = 1
	}
	if c.IsDown(MoveDown) {
		dy = -1
	}
	if c.IsDown(MoveLeft) {
		dx = -1
	}
	if c.IsDown(MoveRight) {
		dx = 1
	}
	return dx, dy
}
