// internal/timer/scheduler.go
package timer

import "sort"

// ID identifies a scheduled task. IDs are never reused by a Scheduler.
type ID uint64

// Group tags tasks so they can be counted and cancelled together.
type Group string

type task struct {
	id    ID
	at    uint64
	group Group
	fn    func()
}

// Scheduler is a tick-indexed list of deferred callbacks. It has no clock of
// its own: time moves only when the owner calls Advance, so a paused owner
// defers every pending task uniformly.
type Scheduler struct {
	now    uint64
	nextID ID
	tasks  []task // sorted by (at, id)
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Schedule runs fn delay ticks from now: on the delay-th following Advance,
// or the next one for a delay of 0. Negative delays are treated as 0.
func (s *Scheduler) Schedule(delay int, group Group, fn func()) ID {
	if delay < 0 {
		delay = 0
	}
	t := task{id: s.nextID, at: s.now + uint64(delay), group: group, fn: fn}
	s.nextID++

	i := sort.Search(len(s.tasks), func(i int) bool { return s.tasks[i].at > t.at })
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.id
}

// Cancel removes a pending task. Returns false if it already fired or was cancelled.
func (s *Scheduler) Cancel(id ID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelGroup removes every pending task of group and returns how many were dropped.
func (s *Scheduler) CancelGroup(group Group) int {
	kept := s.tasks[:0]
	dropped := 0
	for _, t := range s.tasks {
		if t.group == group {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	clearTail(s.tasks, len(kept))
	s.tasks = kept
	return dropped
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	clearTail(s.tasks, 0)
	s.tasks = s.tasks[:0]
}

// PendingIn counts the unfired tasks of group.
func (s *Scheduler) PendingIn(group Group) int {
	n := 0
	for _, t := range s.tasks {
		if t.group == group {
			n++
		}
	}
	return n
}

// Advance moves time forward by one tick and fires every task that is due, in
// scheduling order. Tasks scheduled by a callback never fire in the same Advance.
func (s *Scheduler) Advance() {
	s.now++
	n := 0
	for n < len(s.tasks) && s.tasks[n].at <= s.now {
		n++
	}
	due := make([]task, n)
	copy(due, s.tasks[:n])
	s.tasks = append(s.tasks[:0], s.tasks[n:]...)

	for _, t := range due {
		t.fn()
	}
}

// clearTail drops references held by the unused part of the backing array.
func clearTail(tasks []task, from int) {
	for i := from; i < len(tasks); i++ {
		tasks[i] = task{}
	}
}
