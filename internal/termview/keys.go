package termview

import (
	"chunkwalk/internal/input"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldFrames keeps a button down between terminal key repeats.
const DefaultHoldFrames = 8

// KeyHold fakes key releases. Terminals only report presses (and repeats while held),
// so a press keeps its button down for a number of frames.
type KeyHold struct {
	remaining  [input.ButtonCount]int
	holdFrames int
}

func NewKeyHold(holdFrames int) *KeyHold {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &KeyHold{holdFrames: holdFrames}
}

// Press marks b as held for the next holdFrames frames. Opposite move buttons are
// released so a turn takes effect on the first key.
func (k *KeyHold) Press(b input.Button) {
	switch b {
	case input.MoveUp:
		k.remaining[input.MoveDown] = 0
	case input.MoveDown:
		k.remaining[input.MoveUp] = 0
	case input.MoveLeft:
		k.remaining[input.MoveRight] = 0
	case input.MoveRight:
		k.remaining[input.MoveLeft] = 0
	}
	k.remaining[b] = k.holdFrames
}

// Apply writes the held state into c and advances one frame.
func (k *KeyHold) Apply(c *input.Controller) {
	c.IsConnected = true
	for b := range k.remaining {
		c.ProcessKeyPress(input.Button(b), k.remaining[b] > 0)
		if k.remaining[b] > 0 {
			k.remaining[b]--
		}
	}
}

// ButtonForKey maps arrow keys and wasd to buttons.
func ButtonForKey(ev *tcell.EventKey) (input.Button, bool) {
	return buttonFor(ev.Key(), ev.Rune())
}

func buttonFor(key tcell.Key, r rune) (input.Button, bool) {
	switch key {
	case tcell.KeyUp:
		return input.MoveUp, true
	case tcell.KeyDown:
		return input.MoveDown, true
	case tcell.KeyLeft:
		return input.MoveLeft, true
	case tcell.KeyRight:
		return input.MoveRight, true
	case tcell.KeyEnter:
		return input.Start, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.MoveUp, true
		case 's', 'S':
			return input.MoveDown, true
		case 'a', 'A':
			return input.MoveLeft, true
		case 'd', 'D':
			return input.MoveRight, true
		case ' ':
			return input.Start, true
		}
	}
	return 0, false
}

// IsQuit reports the keys that end the session.
func IsQuit(ev *tcell.EventKey) bool {
	return isQuit(ev.Key(), ev.Rune())
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && (r == 'q' || r == 'Q'))
}
