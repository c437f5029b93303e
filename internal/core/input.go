package core

import (
	"sort"
	"time"
)

// Control is a semantic game input, abstracted from physical keys.
type Control uint8

const (
	ControlUp    Control = 1 << iota // thrust, launch hold, speed up
	ControlDown                      // speed down
	ControlLeft                      // strafe left
	ControlRight                     // strafe right
	ControlFire                      // shoot
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlUp:
		return "Up"
	case ControlDown:
		return "Down"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// AllControls lists every control in a stable order.
var AllControls = []Control{ControlUp, ControlDown, ControlLeft, ControlRight, ControlFire}

// Controls is the set of controls held during one tick.
type Controls uint8

// Has reports whether c is held.
func (cs Controls) Has(c Control) bool {
	return cs&Controls(c) != 0
}

// With returns the set with c added.
func (cs Controls) With(c Control) Controls {
	return cs | Controls(c)
}

// Bindings maps each control to the key names that trigger it.
type Bindings map[Control][]string

// DefaultBindings returns arrow keys plus WASD-style alternates.
func DefaultBindings() Bindings {
	return Bindings{
		ControlUp:    {"up", "w"},
		ControlDown:  {"down"},
		ControlLeft:  {"left", "a"},
		ControlRight: {"right", "d"},
		ControlFire:  {"space", "s"},
	}
}

// Tracker is the set of currently held keys, maintained from press and
// release events. Press of a held key and release of an unheld key are no-ops.
type Tracker struct {
	held map[string]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[string]struct{})}
}

// Press marks key as held.
func (t *Tracker) Press(key string) {
	t.held[key] = struct{}{}
}

// Release marks key as not held.
func (t *Tracker) Release(key string) {
	delete(t.held, key)
}

// Held reports whether key is currently held.
func (t *Tracker) Held(key string) bool {
	_, ok := t.held[key]
	return ok
}

// Reset releases every key.
func (t *Tracker) Reset() {
	clear(t.held)
}

// Keys returns the held keys in sorted order.
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.held))
	for k := range t.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Controls resolves the held keys through b.
func (t *Tracker) Controls(b Bindings) Controls {
	var cs Controls
	for _, c := range AllControls {
		for _, key := range b[c] {
			if t.Held(key) {
				cs = cs.With(c)
				break
			}
		}
	}
	return cs
}

// Hold windows for hosts that only deliver key-down events. The first press
// has to outlast the OS auto-repeat delay; once repeats arrive they come
// quickly and a short window makes release feel immediate.
const (
	InitialHoldWindow = 600 * time.Millisecond
	RepeatHoldWindow  = 120 * time.Millisecond
)

// HoldTracker emulates key release for terminals, which report presses
// (and auto-repeats) but never releases. Each press refreshes a deadline,
// and Expire releases keys whose deadline has passed.
type HoldTracker struct {
	*Tracker
	deadlines map[string]time.Time
}

// NewHoldTracker creates an empty hold tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		Tracker:   NewTracker(),
		deadlines: make(map[string]time.Time),
	}
}

// PressAt records a key-down event seen at now.
func (h *HoldTracker) PressAt(key string, now time.Time) {
	window := InitialHoldWindow
	if h.Held(key) {
		window = RepeatHoldWindow
	}
	h.Press(key)
	h.deadlines[key] = now.Add(window)
}

// Release drops key immediately.
func (h *HoldTracker) Release(key string) {
	h.Tracker.Release(key)
	delete(h.deadlines, key)
}

// Expire releases every key whose deadline is not after now.
func (h *HoldTracker) Expire(now time.Time) {
	for key, deadline := range h.deadlines {
		if !now.Before(deadline) {
			h.Release(key)
		}
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	h.Tracker.Reset()
	clear(h.deadlines)
}
