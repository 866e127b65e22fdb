package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFast
	ActionToggleGrab
	ActionQuit
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks their state
type InputManager struct {
	mu sync.RWMutex

	// One key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	im.BindKey(glfw.KeyLeftControl, ActionFast)
	im.BindKey(glfw.KeyTab, ActionToggleGrab)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback sets up the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
