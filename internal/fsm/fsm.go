// Package fsm holds small transition tables for entity status fields.
//
// A Machine is built once from a declarative table and validated at
// construction: every target must be a declared state and terminal states
// must have no outgoing edges. Callers then ask Can/Check instead of
// scattering string comparisons.
package fsm

import (
	"fmt"
	"sort"
)

// Machine is an immutable transition table over states of type S.
type Machine[S ~string] struct {
	name     string
	edges    map[S]map[S]struct{}
	terminal map[S]struct{}
}

// Table maps each state to the states reachable from it. Terminal states
// map to nil.
type Table[S ~string] map[S][]S

// New validates the table and returns a Machine.
func New[S ~string](name string, table Table[S], terminal ...S) (*Machine[S], error) {
	m := &Machine[S]{
		name:     name,
		edges:    make(map[S]map[S]struct{}, len(table)),
		terminal: make(map[S]struct{}, len(terminal)),
	}

	for state := range table {
		m.edges[state] = make(map[S]struct{})
	}
	for _, t := range terminal {
		if _, ok := m.edges[t]; !ok {
			return nil, fmt.Errorf("fsm %s: terminal state %q is not declared", name, t)
		}
		m.terminal[t] = struct{}{}
	}

	for from, targets := range table {
		for _, to := range targets {
			if _, ok := m.edges[to]; !ok {
				return nil, fmt.Errorf("fsm %s: %q -> %q targets an undeclared state", name, from, to)
			}
			if from == to {
				return nil, fmt.Errorf("fsm %s: self transition on %q", name, from)
			}
			m.edges[from][to] = struct{}{}
		}
		if _, ok := m.terminal[from]; ok && len(targets) > 0 {
			return nil, fmt.Errorf("fsm %s: terminal state %q has outgoing transitions", name, from)
		}
	}

	return m, nil
}

// MustNew is New for package-level tables; it panics on an invalid table.
func MustNew[S ~string](name string, table Table[S], terminal ...S) *Machine[S] {
	m, err := New(name, table, terminal...)
	if err != nil {
		panic(err)
	}
	return m
}

// Valid reports whether s is a declared state.
func (m *Machine[S]) Valid(s S) bool {
	_, ok := m.edges[s]
	return ok
}

// Terminal reports whether s accepts no further transitions.
func (m *Machine[S]) Terminal(s S) bool {
	_, ok := m.terminal[s]
	return ok
}

// Can reports whether from -> to is in the table.
func (m *Machine[S]) Can(from, to S) bool {
	targets, ok := m.edges[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Check returns a descriptive error when from -> to is not allowed.
func (m *Machine[S]) Check(from, to S) error {
	switch {
	case !m.Valid(to):
		return fmt.Errorf("%s: unknown state %q", m.name, to)
	case m.Terminal(from):
		return fmt.Errorf("%s: %q is terminal", m.name, from)
	case !m.Can(from, to):
		return fmt.Errorf("%s: transition %q -> %q not allowed", m.name, from, to)
	}
	return nil
}

// States returns the declared states in sorted order.
func (m *Machine[S]) States() []S {
	out := make([]S, 0, len(m.edges))
	for s := range m.edges {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
