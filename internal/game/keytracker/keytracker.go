// keytracker.go - edge detection for toggle keys.
// Works with any key type so hosts other than ebiten can share it.
package keytracker

// KeyStateTracker tracks the previous state of a set of keys.
type KeyStateTracker[K comparable] struct {
	isPressed   func(K) bool
	prevPressed map[K]bool
}

func New[K comparable](isPressed func(K) bool) *KeyStateTracker[K] {
	return &KeyStateTracker[K]{
		isPressed:   isPressed,
		prevPressed: make(map[K]bool),
	}
}

// IsKeyJustPressed returns true if the key was not pressed last call but is pressed now.
func (k *KeyStateTracker[K]) IsKeyJustPressed(key K) bool {
	pressed := k.isPressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
