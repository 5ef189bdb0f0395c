package team

import (
	"errors"
	"fmt"
	"strings"

	sharedvo "github.com/nexus-desk/nexus/internal/domain/shared/valueobjects"
)

const DefaultRole = "Agent"

type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusInactive MemberStatus = "inactive"
)

func (s MemberStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s MemberStatus) String() string {
	return string(s)
}

var (
	ErrNameRequired       = errors.New("name is required")
	ErrIDRequired         = errors.New("team member ID is required")
	ErrIdentityAlreadySet = errors.New("team member identity already assigned")
)

// Member is an internal support staff record.
type Member struct {
	id     string
	name   string
	role   string
	email  sharedvo.Email
	status MemberStatus
}

// NewMember builds a draft. Role defaults to Agent and status to active.
func NewMember(name, email, role, status string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	addr, err := sharedvo.NewEmail(email)
	if err != nil {
		return nil, err
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = DefaultRole
	}

	st := StatusActive
	if status = strings.TrimSpace(status); status != "" {
		st = MemberStatus(strings.ToLower(status))
		if !st.IsValid() {
			return nil, fmt.Errorf("invalid member status: %s", status)
		}
	}

	return &Member{
		name:   name,
		role:   role,
		email:  addr,
		status: st,
	}, nil
}

func ReconstructMember(id, name, role, email string, status MemberStatus) (*Member, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid member status: %s", status)
	}
	addr, err := sharedvo.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Member{
		id:     id,
		name:   name,
		role:   role,
		email:  addr,
		status: status,
	}, nil
}

func (m *Member) WithIdentity(id string) (*Member, error) {
	if m.id != "" {
		return nil, ErrIdentityAlreadySet
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	clone := *m
	clone.id = id
	return &clone, nil
}

func (m *Member) ID() string {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Role() string {
	return m.role
}

func (m *Member) Email() string {
	return m.email.String()
}

func (m *Member) Status() MemberStatus {
	return m.status
}

func (m *Member) IsActive() bool {
	return m.status == StatusActive
}
