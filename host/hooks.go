package host

import (
	"cmp"
	"slices"
)

// Phase names a host lifecycle point where assets are enqueued.
type Phase string

// Host phases.
const (
	PhaseFrontend Phase = "frontend" // front-end page render
	PhaseEditor   Phase = "editor"   // block editor assets
)

// DefaultPriority is used when a priority is not positive.
const DefaultPriority = 10

// Hooks schedules callbacks on host phases. Implementations run lower
// priorities first.
type Hooks interface {
	AddAction(phase Phase, priority int, fn func())
}

// ActionQueue is an in-memory Hooks. It runs callbacks by ascending priority,
// in insertion order for equal priorities.
type ActionQueue struct {
	actions map[Phase][]action
	seq     int
}

type action struct {
	priority int
	seq      int
	fn       func()
}

// NewActionQueue returns an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{actions: map[Phase][]action{}}
}

// AddAction schedules fn on phase.
func (q *ActionQueue) AddAction(phase Phase, priority int, fn func()) {
	if fn == nil {
		return
	}
	q.seq++
	q.actions[phase] = append(q.actions[phase], action{priority: priority, seq: q.seq, fn: fn})
}

// Run invokes every callback scheduled on phase and returns how many ran.
func (q *ActionQueue) Run(phase Phase) int {
	queued := slices.Clone(q.actions[phase])
	slices.SortStableFunc(queued, func(a, b action) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, a := range queued {
		a.fn()
	}
	return len(queued)
}

// Len returns the number of callbacks scheduled on phase.
func (q *ActionQueue) Len(phase Phase) int {
	return len(q.actions[phase])
}

// Compile-time interface check.
var _ Hooks = (*ActionQueue)(nil)

func normalizePriority(p int) int {
	if p > 0 {
		return p
	}
	return DefaultPriority
}
