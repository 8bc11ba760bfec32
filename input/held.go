package input

import "time"

// HeldTracker synthesizes held-key state for surfaces that only report presses
// Terminals send a key event on press and then on auto-repeat; a key is held while
// presses keep arriving within the hold window and released when the window lapses
// The first press uses a longer window covering the auto-repeat start delay
type HeldTracker struct {
	initialHold time.Duration
	repeatHold  time.Duration

	deadline [keyCount]time.Time
	held     KeySet
}

// NewHeldTracker creates a tracker with the given initial and repeat hold windows
func NewHeldTracker(initialHold, repeatHold time.Duration) *HeldTracker {
	return &HeldTracker{
		initialHold: initialHold,
		repeatHold:  repeatHold,
	}
}

// Press records a key press at now and returns the key-down event if the key was not held
func (h *HeldTracker) Press(k Key, now time.Time) (Event, bool) {
	if k == KeyNone || k >= keyCount {
		return Event{}, false
	}

	if h.held.Has(k) {
		h.deadline[k] = now.Add(h.repeatHold)
		return Event{}, false
	}

	h.held = h.held.With(k)
	h.deadline[k] = now.Add(h.initialHold)
	return Press(k), true
}

// Expire releases keys whose hold window lapsed before now and appends their key-up events to dst
func (h *HeldTracker) Expire(now time.Time, dst []Event) []Event {
	for k := KeyLeft; k < keyCount; k++ {
		if !h.held.Has(k) {
			continue
		}
		if now.After(h.deadline[k]) {
			h.held = h.held.Without(k)
			dst = append(dst, Release(k))
		}
	}
	return dst
}

// Held returns the currently held set
func (h *HeldTracker) Held() KeySet {
	return h.held
}

// Reset releases every key without emitting events
func (h *HeldTracker) Reset() {
	h.held = 0
	h.deadline = [keyCount]time.Time{}
}
