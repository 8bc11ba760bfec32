package fsm

import (
	"fmt"
)

// Machine is a flat state machine that resolves its active state once per Update
// Rules are evaluated in registration order; the first passing guard selects the state,
// otherwise the fallback state is active. T is the context passed to guards and actions
type Machine[T any] struct {
	// Graph Data (Immutable after Init)
	nodes    map[StateID]*Node[T]
	rules    []Rule[T]
	fallback StateID

	// Runtime State
	active       StateID
	ticksInState uint64
	transitions  uint64
}

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState registers a node, replacing any existing node with the same ID
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	n := &Node[T]{ID: id, Name: name}
	m.nodes[id] = n
	return n
}

// AddRule appends a prioritized rule
func (m *Machine[T]) AddRule(target StateID, guard GuardFunc[T]) error {
	if _, ok := m.nodes[target]; !ok {
		return fmt.Errorf("%w: rule target %d", ErrUnknownState, target)
	}
	m.rules = append(m.rules, Rule[T]{Target: target, Guard: guard})
	return nil
}

// SetFallback sets the state active when no rule fires
func (m *Machine[T]) SetFallback(id StateID) error {
	if _, ok := m.nodes[id]; !ok {
		return fmt.Errorf("%w: fallback %d", ErrUnknownState, id)
	}
	m.fallback = id
	return nil
}

// Init enters the fallback state without evaluating rules
func (m *Machine[T]) Init(ctx T) error {
	if m.fallback == StateNone {
		return ErrNoFallback
	}
	m.active = m.fallback
	m.ticksInState = 0
	for _, fn := range m.nodes[m.active].OnEnter {
		fn(ctx)
	}
	return nil
}

// Resolve returns the state the rules select for ctx without changing the machine
func (m *Machine[T]) Resolve(ctx T) StateID {
	for _, r := range m.rules {
		if r.Guard == nil || r.Guard(ctx) {
			return r.Target
		}
	}
	return m.fallback
}

// Update resolves the active state, runs exit/enter actions on change, then OnUpdate of the active state
// Returns true if the active state changed
func (m *Machine[T]) Update(ctx T) bool {
	if m.active == StateNone {
		return false
	}

	next := m.Resolve(ctx)
	changed := next != m.active
	if changed {
		for _, fn := range m.nodes[m.active].OnExit {
			fn(ctx)
		}
		m.active = next
		m.ticksInState = 0
		m.transitions++
		for _, fn := range m.nodes[m.active].OnEnter {
			fn(ctx)
		}
	} else {
		m.ticksInState++
	}

	for _, fn := range m.nodes[m.active].OnUpdate {
		fn(ctx)
	}
	return changed
}

// Active returns the current state
func (m *Machine[T]) Active() StateID {
	return m.active
}

// StateName returns the registered name of id, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if n, ok := m.nodes[id]; ok {
		return n.Name
	}
	return ""
}

// TicksInState returns the number of updates since the last transition
func (m *Machine[T]) TicksInState() uint64 {
	return m.ticksInState
}

// Transitions returns the number of state changes since Init
func (m *Machine[T]) Transitions() uint64 {
	return m.transitions
}
