package input

// EventType classifies discrete input events
type EventType uint8

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventQuit
)

// Event is a discrete input occurrence delivered to the simulation in arrival order
type Event struct {
	Type EventType
	Key  Key
}

// Frame is the input sampled for one simulation step
type Frame struct {
	Held   KeySet
	Events []Event
}

// Press builds a key-down event
func Press(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// Release builds a key-up event
func Release(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// Quit builds a quit event
func Quit() Event { return Event{Type: EventQuit} }
