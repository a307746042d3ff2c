package task

import "time"

// Store owns the ordered task sequence for a session. The UI model holds
// the only reference, and every mutation runs to completion inside a
// single event handler, so no locking is needed.
//
// All operations are total: callers hand the store well-formed values and
// unknown ids fall through without effect.
type Store struct {
	tasks []Task
}

// NewStore creates a store holding the given tasks in order.
func NewStore(initial ...Task) *Store {
	s := &Store{}
	s.tasks = append(s.tasks, initial...)
	return s
}

// Add appends a fully-formed task to the sequence.
func (s *Store) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Remove drops any task whose id matches, keeping the survivors in their
// original insertion order.
func (s *Store) Remove(id string) {
	var kept []Task
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// Reschedule replaces the start date of the matching task, leaving every
// other field untouched.
func (s *Store) Reschedule(id string, start time.Time) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Start = start
			return
		}
	}
}

// Tasks returns a copy of the current sequence in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get looks up a task by id.
func (s *Store) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Len reports the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}
