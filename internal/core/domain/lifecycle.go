package domain

// Stage declares one state of a Lifecycle together with the states it may move to.
type Stage[S ~string] struct {
	State S
	Label string
	Next  []S
}

// Lifecycle is a fixed transition table for a status enum. It is the single
// source for both transition checks and the "allowed next" lists shown to users.
type Lifecycle[S ~string] struct {
	initial S
	order   []S
	stages  map[S]Stage[S]
}

// NewLifecycle builds a table from its stages. States keep declaration order.
func NewLifecycle[S ~string](initial S, stages ...Stage[S]) Lifecycle[S] {
	l := Lifecycle[S]{
		initial: initial,
		order:   make([]S, 0, len(stages)),
		stages:  make(map[S]Stage[S], len(stages)),
	}
	for _, st := range stages {
		l.order = append(l.order, st.State)
		l.stages[st.State] = st
	}
	return l
}

// Initial is the state new records start in.
func (l Lifecycle[S]) Initial() S {
	return l.initial
}

// States lists every known state in declaration order.
func (l Lifecycle[S]) States() []S {
	out := make([]S, len(l.order))
	copy(out, l.order)
	return out
}

// Valid reports whether s is a known state.
func (l Lifecycle[S]) Valid(s S) bool {
	_, ok := l.stages[s]
	return ok
}

// Allowed returns the states reachable from `from` in one step.
func (l Lifecycle[S]) Allowed(from S) []S {
	st, ok := l.stages[from]
	if !ok || len(st.Next) == 0 {
		return []S{}
	}
	out := make([]S, len(st.Next))
	copy(out, st.Next)
	return out
}

// CanTransition reports whether from -> to is a legal single step.
// Self-transitions are never legal.
func (l Lifecycle[S]) CanTransition(from, to S) bool {
	if from == to {
		return false
	}
	for _, next := range l.stages[from].Next {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (l Lifecycle[S]) IsTerminal(s S) bool {
	return l.Valid(s) && len(l.stages[s].Next) == 0
}

// Label returns the display label for s, or s itself if none is registered.
func (l Lifecycle[S]) Label(s S) string {
	if st, ok := l.stages[s]; ok && st.Label != "" {
		return st.Label
	}
	return string(s)
}
