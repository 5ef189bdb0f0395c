package ticket

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

// Lengths are counted in runes.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000

	// DefaultCategory is used when no classification ran.
	DefaultCategory = "General"
)

// Ticket is immutable once constructed; state changes return a modified copy
// so snapshots handed to readers never change underneath them.
type Ticket struct {
	id          string
	title       string
	description string
	clientID    string
	assignedTo  *string
	status      vo.TicketStatus
	priority    vo.Priority
	category    string
	createdAt   time.Time
	aiAnalysis  string
}

// Triage holds the fields normally decided by classification.
type Triage struct {
	Priority vo.Priority
	Category string
	Summary  string
}

// NewTicket validates a submission and returns a draft without identity. The
// entity store assigns the ID and creation time.
func NewTicket(title, description, clientID string, triage Triage) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	clientID = strings.TrimSpace(clientID)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if clientID == "" {
		return nil, ErrClientRequired
	}
	if !triage.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	category := strings.TrimSpace(triage.Category)
	if category == "" {
		category = DefaultCategory
	}

	return &Ticket{
		title:       title,
		description: description,
		clientID:    clientID,
		status:      vo.StatusOpen,
		priority:    triage.Priority,
		category:    category,
		aiAnalysis:  strings.TrimSpace(triage.Summary),
	}, nil
}

func ReconstructTicket(
	id string,
	title string,
	description string,
	clientID string,
	assignedTo *string,
	status vo.TicketStatus,
	priority vo.Priority,
	category string,
	createdAt time.Time,
	aiAnalysis string,
) (*Ticket, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	if clientID == "" {
		return nil, ErrClientRequired
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if createdAt.IsZero() {
		return nil, ErrCreatedAtRequired
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		clientID:    clientID,
		assignedTo:  assignedTo,
		status:      status,
		priority:    priority,
		category:    category,
		createdAt:   createdAt.UTC(),
		aiAnalysis:  aiAnalysis,
	}, nil
}

// WithIdentity returns a copy of a draft carrying its permanent ID and
// creation time.
func (t *Ticket) WithIdentity(id string, createdAt time.Time) (*Ticket, error) {
	if t.id != "" {
		return nil, ErrIdentityAlreadySet
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	if createdAt.IsZero() {
		return nil, ErrCreatedAtRequired
	}
	clone := *t
	clone.id = id
	clone.createdAt = createdAt.UTC()
	return &clone, nil
}

// WithStatus returns a copy with only the status changed.
func (t *Ticket) WithStatus(status vo.TicketStatus) (*Ticket, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	clone := *t
	clone.status = status
	return &clone, nil
}

// Matches reports whether term occurs in the title or description, ignoring case.
func (t *Ticket) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.title), term) ||
		strings.Contains(strings.ToLower(t.description), term)
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) ClientID() string {
	return t.clientID
}

// AssignedTo is carried for storage compatibility; nothing assigns tickets yet.
func (t *Ticket) AssignedTo() *string {
	if t.assignedTo == nil {
		return nil
	}
	v := *t.assignedTo
	return &v
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) AIAnalysis() string {
	return t.aiAnalysis
}

func (t *Ticket) IsUnresolved() bool {
	return t.status.IsUnresolved()
}

func (t *Ticket) BelongsTo(clientID string) bool {
	return t.clientID == clientID
}
