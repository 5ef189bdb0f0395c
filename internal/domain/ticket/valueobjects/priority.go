package valueobjects

import (
	"fmt"
	"slices"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// least to most severe
var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func AllPriorities() []Priority {
	return slices.Clone(priorities)
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return slices.Contains(priorities, p)
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

func NewPriority(s string) (Priority, error) {
	if p := Priority(s); p.IsValid() {
		return p, nil
	}
	return "", fmt.Errorf("invalid priority: %q", s)
}

// ParsePriority is the lenient form used for model output: surrounding space
// and letter case are ignored.
func ParsePriority(s string) (Priority, error) {
	return NewPriority(strings.ToUpper(strings.TrimSpace(s)))
}
