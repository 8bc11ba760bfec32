package constant

import "time"

// Held-key synthesis for surfaces without key release events
const (
	// InitialHold covers the terminal auto-repeat start delay after the first press
	InitialHold = 550 * time.Millisecond

	// RepeatHold is the gap between auto-repeat events tolerated before release
	RepeatHold = 120 * time.Millisecond
)
