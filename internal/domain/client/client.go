package client

import (
	"errors"
	"strings"
	"time"

	sharedvo "github.com/nexus-desk/nexus/internal/domain/shared/valueobjects"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrCompanyRequired    = errors.New("company is required")
	ErrIDRequired         = errors.New("client ID is required")
	ErrIdentityAlreadySet = errors.New("client identity already assigned")
)

// Client is an external customer organization contact. It is never modified
// after creation. Its ID is also the portal access token.
type Client struct {
	id        string
	name      string
	company   string
	email     sharedvo.Email
	createdAt time.Time
}

func NewClient(name, company, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	company = strings.TrimSpace(company)

	if name == "" {
		return nil, ErrNameRequired
	}
	if company == "" {
		return nil, ErrCompanyRequired
	}
	addr, err := sharedvo.NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &Client{
		name:    name,
		company: company,
		email:   addr,
	}, nil
}

func ReconstructClient(id, name, company, email string, createdAt time.Time) (*Client, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	addr, err := sharedvo.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Client{
		id:        id,
		name:      name,
		company:   company,
		email:     addr,
		createdAt: createdAt.UTC(),
	}, nil
}

// WithIdentity returns a copy of a draft carrying its permanent ID and
// creation time.
func (c *Client) WithIdentity(id string, createdAt time.Time) (*Client, error) {
	if c.id != "" {
		return nil, ErrIdentityAlreadySet
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	clone := *c
	clone.id = id
	clone.createdAt = createdAt.UTC()
	return &clone, nil
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Company() string {
	return c.company
}

func (c *Client) Email() string {
	return c.email.String()
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// Find returns the client with the given ID.
func Find(clients []*Client, id string) (*Client, bool) {
	for _, c := range clients {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}
