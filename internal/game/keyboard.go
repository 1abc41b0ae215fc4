package game

import (
	"chunkwalk/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

type keyBinding struct {
	button input.Button
	keys   []ebiten.Key
}

var keyBindings = []keyBinding{
	{input.MoveUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{input.MoveDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{input.MoveLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{input.MoveRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{input.ActionUp, []ebiten.Key{ebiten.KeyI}},
	{input.ActionDown, []ebiten.Key{ebiten.KeyK}},
	{input.ActionLeft, []ebiten.Key{ebiten.KeyJ}},
	{input.ActionRight, []ebiten.Key{ebiten.KeyL}},
	{input.LeftShoulder, []ebiten.Key{ebiten.KeyQ}},
	{input.RightShoulder, []ebiten.Key{ebiten.KeyE}},
	{input.Back, []ebiten.Key{ebiten.KeyBackspace}},
	{input.Start, []ebiten.Key{ebiten.KeySpace}},
}

// SampleKeyboard records the keyboard into a controller. A button is down while any of
// its keys is held.
func SampleKeyboard(c *input.Controller, isPressed func(ebiten.Key) bool) {
	c.IsConnected = true
	for _, b := range keyBindings {
		down := false
		for _, k := range b.keys {
			if isPressed(k) {
				down = true
				break
			}
		}
		c.ProcessKeyPress(b.button, down)
	}
}
