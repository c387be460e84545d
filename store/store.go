// Package store owns the ordered in-memory task list and the ephemeral
// priority-suggestion state of the compose workflow.
//
// The store is single-owner state: every mutation happens on the app's step
// goroutine, so there is no locking. Collaborators receive the store by
// handle and are told about mutations through the explicit change callback,
// never by polling.
package store

import (
	"strings"

	"github.com/google/uuid"
)

// Store is the authoritative task list.
type Store struct {
	tasks []Task

	suggestSeq     uint64
	suggestPending bool
	suggested      Priority
	hasSuggested   bool

	onChange func()
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// OnChange registers the single observer invoked after every successful
// mutation, including suggestion-state transitions.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a snapshot copy in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a new task. Empty or whitespace-only text is rejected and the
// list is left unchanged. The new task consumes a resolved suggestion if one
// is present, otherwise it gets a uniformly random priority. Any in-flight
// suggestion request is invalidated: its result belongs to the text that was
// just consumed, not to whatever is typed next.
func (s *Store) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}

	prio := RandomPriority()
	if s.hasSuggested {
		prio = s.suggested
	}

	t := Task{
		ID:       uuid.NewString(),
		Text:     text,
		Priority: prio,
	}
	s.tasks = append(s.tasks, t)

	s.suggestSeq++ // invalidate anything still in flight
	s.suggestPending = false
	s.hasSuggested = false

	s.notify()
	return t, true
}

// Toggle flips the completion flag of the task matching id.
// Unknown ids are a no-op.
func (s *Store) Toggle(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		s.notify()
		return true
	}
	return false
}

// Delete removes the task matching id, preserving the relative order of the
// rest. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.notify()
		return true
	}
	return false
}

// BeginSuggestion marks a suggestion request as pending and returns its
// sequence number. Starting a new request supersedes any earlier one:
// only the most recent sequence number can resolve (last request wins).
func (s *Store) BeginSuggestion() uint64 {
	s.suggestSeq++
	s.suggestPending = true
	s.hasSuggested = false
	s.notify()
	return s.suggestSeq
}

// ResolveSuggestion applies a suggestion result. Results carrying a stale
// sequence number are discarded so a slow early response can never clobber
// a later request.
func (s *Store) ResolveSuggestion(seq uint64, p Priority) bool {
	if seq != s.suggestSeq || !s.suggestPending {
		return false
	}
	s.suggestPending = false
	s.suggested = p
	s.hasSuggested = true
	s.notify()
	return true
}

// SuggestionPending reports whether a request is in flight.
func (s *Store) SuggestionPending() bool { return s.suggestPending }

// SuggestedPriority returns the resolved, not yet consumed suggestion.
func (s *Store) SuggestedPriority() (Priority, bool) {
	return s.suggested, s.hasSuggested
}
