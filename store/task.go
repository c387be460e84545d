package store

import (
	"math/rand"
	"strings"
)

// Priority is a task priority level.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// DefaultPriority is assumed whenever a suggestion cannot be obtained.
const DefaultPriority = PriorityMedium

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return "Medium"
}

// ParsePriority maps free text to a priority level. Matching is
// case-insensitive and ignores surrounding whitespace; anything else
// reports ok=false.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return DefaultPriority, false
}

// RandomPriority returns a uniformly random priority level.
func RandomPriority() Priority {
	return Priority(rand.Intn(3))
}

// Task is one to-do record. ID and Text are immutable after creation;
// Priority is fixed at creation time.
type Task struct {
	ID        string
	Text      string
	Completed bool
	Priority  Priority
}
