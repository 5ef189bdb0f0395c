package valueobjects

import (
	"fmt"
	"slices"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusResolved   TicketStatus = "RESOLVED"
	StatusClosed     TicketStatus = "CLOSED"
)

// workflow order
var statuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

func AllStatuses() []TicketStatus {
	return slices.Clone(statuses)
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return slices.Contains(statuses, ts)
}

// IsUnresolved reports whether the ticket still needs work.
func (ts TicketStatus) IsUnresolved() bool {
	return ts == StatusOpen || ts == StatusInProgress
}

// Next is the forward step the dashboard offers, stopping at RESOLVED.
// Any status may still be set directly.
func (ts TicketStatus) Next() (TicketStatus, bool) {
	if !ts.IsUnresolved() {
		return "", false
	}
	return statuses[slices.Index(statuses, ts)+1], true
}

func NewTicketStatus(s string) (TicketStatus, error) {
	if ts := TicketStatus(s); ts.IsValid() {
		return ts, nil
	}
	return "", fmt.Errorf("invalid ticket status: %q", s)
}
