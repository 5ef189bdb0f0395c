package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/mappers"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const DefaultKeyPrefix = "nexus_"

// Keys names the four entries the state is split into.
type Keys struct {
	Tickets  string
	Clients  string
	Team     string
	Settings string
}

func KeysWithPrefix(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{
		Tickets:  prefix + "tickets",
		Clients:  prefix + "clients",
		Team:     prefix + "team",
		Settings: prefix + "settings",
	}
}

var _ store.Persister = (*StateRepository)(nil)

// StateRepository stores each state slice as one JSON document.
type StateRepository struct {
	kv             kvstore.Store
	keys           Keys
	ticketMapper   mappers.TicketMapper
	clientMapper   mappers.ClientMapper
	teamMapper     mappers.TeamMapper
	settingsMapper mappers.SettingsMapper
	logger         logger.Interface
}

func NewStateRepository(kv kvstore.Store, keyPrefix string, logger logger.Interface) *StateRepository {
	return &StateRepository{
		kv:             kv,
		keys:           KeysWithPrefix(keyPrefix),
		ticketMapper:   mappers.NewTicketMapper(),
		clientMapper:   mappers.NewClientMapper(),
		teamMapper:     mappers.NewTeamMapper(),
		settingsMapper: mappers.NewSettingsMapper(),
		logger:         logger,
	}
}

// Load reads all four entries. A missing entry is reported through the Has
// flags; an entry that exists but cannot be decoded is an error.
func (r *StateRepository) Load(ctx context.Context) (*store.Loaded, error) {
	loaded := &store.Loaded{}

	var tickets []models.TicketRecord
	found, err := r.read(ctx, r.keys.Tickets, &tickets)
	if err != nil {
		return nil, err
	}
	if found {
		if loaded.Tickets, err = r.ticketMapper.ToDomainList(tickets); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.keys.Tickets, err)
		}
		loaded.HasTickets = true
	}

	var clients []models.ClientRecord
	if found, err = r.read(ctx, r.keys.Clients, &clients); err != nil {
		return nil, err
	}
	if found {
		if loaded.Clients, err = r.clientMapper.ToDomainList(clients); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.keys.Clients, err)
		}
		loaded.HasClients = true
	}

	var team []models.TeamMemberRecord
	if found, err = r.read(ctx, r.keys.Team, &team); err != nil {
		return nil, err
	}
	if found {
		if loaded.Team, err = r.teamMapper.ToDomainList(team); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.keys.Team, err)
		}
		loaded.HasTeam = true
	}

	var settings models.SettingsRecord
	if found, err = r.read(ctx, r.keys.Settings, &settings); err != nil {
		return nil, err
	}
	if found {
		if loaded.Settings, err = r.settingsMapper.ToDomain(&settings); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.keys.Settings, err)
		}
		loaded.HasSettings = true
	}

	r.logger.Debugw("state read from key-value store",
		"has_tickets", loaded.HasTickets,
		"has_clients", loaded.HasClients,
		"has_team", loaded.HasTeam,
		"has_settings", loaded.HasSettings,
	)
	return loaded, nil
}

func (r *StateRepository) read(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save writes all four slices as a single batch.
func (r *StateRepository) Save(ctx context.Context, state *store.State) error {
	values := []struct {
		key   string
		value any
	}{
		{r.keys.Tickets, r.ticketMapper.ToRecordList(state.Tickets)},
		{r.keys.Clients, r.clientMapper.ToRecordList(state.Clients)},
		{r.keys.Team, r.teamMapper.ToRecordList(state.Team)},
		{r.keys.Settings, r.settingsMapper.ToRecord(state.Settings)},
	}

	entries := make([]kvstore.Entry, 0, len(values))
	for _, v := range values {
		data, err := json.Marshal(v.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", v.key, err)
		}
		entries = append(entries, kvstore.Entry{Key: v.key, Value: string(data)})
	}

	if err := r.kv.SetMany(ctx, entries); err != nil {
		r.logger.Errorw("failed to write state", "error", err)
		return err
	}
	return nil
}
