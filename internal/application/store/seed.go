package store

import (
	"fmt"
	"time"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

// DemoState returns the demonstration data a fresh installation starts with.
func DemoState(now time.Time) (*State, error) {
	c1, err := client.ReconstructClient("c1", "John Miller", "CyberDyne Systems", "john@cyberdyne.com", now)
	if err != nil {
		return nil, fmt.Errorf("seed client c1: %w", err)
	}
	c2, err := client.ReconstructClient("c2", "Sarah Connor", "Resistance IT", "sarah@resistance.org", now)
	if err != nil {
		return nil, fmt.Errorf("seed client c2: %w", err)
	}

	t1, err := team.ReconstructMember("t1", "Alex Rivera", "Admin", "alex@nexus.io", team.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("seed member t1: %w", err)
	}
	t2, err := team.ReconstructMember("t2", "Jordan Lee", "Senior Agent", "jordan@nexus.io", team.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("seed member t2: %w", err)
	}

	tk1, err := ticket.ReconstructTicket(
		"tk1",
		"Server downtime in US-EAST-1",
		"Production cluster is unresponsive. Critical latency spikes detected.",
		"c1",
		nil,
		vo.StatusOpen,
		vo.PriorityUrgent,
		"Infrastructure",
		now,
		"Urgent system outage requires immediate DevOps intervention.",
	)
	if err != nil {
		return nil, fmt.Errorf("seed ticket tk1: %w", err)
	}

	return &State{
		Tickets:  []*ticket.Ticket{tk1},
		Clients:  []*client.Client{c1, c2},
		Team:     []*team.Member{t1, t2},
		Settings: setting.DefaultSystemSettings(),
	}, nil
}
