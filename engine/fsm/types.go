package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
)

// Node represents a state and its lifecycle actions
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]
}

// Rule is a prioritized transition into Target, taken when Guard passes
type Rule[T any] struct {
	Target StateID
	Guard  GuardFunc[T] // nil = Always true
}

// GuardFunc returns true if the rule should fire
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// Sentinel errors
var (
	ErrUnknownState = errors.New("fsm: unknown state")
	ErrNoFallback   = errors.New("fsm: no fallback state")
)
