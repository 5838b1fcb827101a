// Package store provides the suggestion store: the in-memory pending set
// per guild, its lifecycle operations and persistence after every mutation.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
)

// ErrNotFound is returned when an operation references a suggestion id
// that is not in the pending set (already decided or never submitted).
var ErrNotFound = errors.New("sugerencia no encontrada")

// ErrUnknownRole is returned by SetChannel for a role outside
// {staff, public, suggestions}.
var ErrUnknownRole = errors.New("tipo de canal desconocido")

// Channel roles accepted by SetChannel.
const (
	RoleStaff       = "staff"
	RolePublic      = "public"
	RoleSuggestions = "suggestions"
)

// ScopeWriter abstracts durable storage for guild scopes. Load is called
// once at startup; Persist after every mutation, before the caller performs
// any notification. A missing backing file/collection is an empty store.
type ScopeWriter interface {
	Load() (map[string]*models.GuildConfig, error)
	Persist(guilds map[string]*models.GuildConfig, guildID string) error
}

// Store owns the mapping from guild id to GuildConfig. discordgo dispatches
// handlers on separate goroutines, so all operations serialize on the mutex;
// a mutation and its persist complete before the next operation observes
// anything.
type Store struct {
	mu     sync.Mutex
	guilds map[string]*models.GuildConfig
	writer ScopeWriter
}

var (
	instance *Store
	once     sync.Once
)

// Init loads the store from the writer and sets the global instance.
func Init(w ScopeWriter) (*Store, error) {
	var err error
	once.Do(func() {
		instance, err = New(w)
	})
	return instance, err
}

// Get returns the global store instance.
func Get() *Store {
	return instance
}

// New creates a Store backed by the given writer and loads its state.
func New(w ScopeWriter) (*Store, error) {
	guilds, err := w.Load()
	if err != nil {
		return nil, fmt.Errorf("error cargando el almacén: %w", err)
	}
	if guilds == nil {
		guilds = make(map[string]*models.GuildConfig)
	}
	pending := 0
	for _, g := range guilds {
		pending += len(g.Pending)
	}
	logger.System(fmt.Sprintf("Almacén cargado: %d servidores, %d sugerencias pendientes", len(guilds), pending), "Store")
	return &Store{guilds: guilds, writer: w}, nil
}

// ensureGuild returns the config for a guild, creating it lazily.
// Caller must hold the mutex.
func (s *Store) ensureGuild(guildID string) *models.GuildConfig {
	g, ok := s.guilds[guildID]
	if !ok {
		g = models.NewGuildConfig()
		s.guilds[guildID] = g
	}
	return g
}

// persist writes the owning scope to durable storage. A failure is fatal to
// the operation in progress: in-memory state may now be ahead of disk, which
// the caller reports as a generic failure and never retries.
func (s *Store) persist(guildID string) error {
	if err := s.writer.Persist(s.guilds, guildID); err != nil {
		logger.Error(fmt.Sprintf("Error persistiendo el servidor %s: %v", guildID, err), "Store")
		return err
	}
	return nil
}

// Submit inserts a new pending suggestion and returns its id. Ids are
// strictly increasing per guild and never reused, so a new id can never
// collide with a currently pending one.
func (s *Store) Submit(guildID, authorID, text, staffMsgID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGuild(guildID)
	id := g.NextID
	g.NextID++
	g.Pending[strconv.FormatInt(id, 10)] = &models.SuggestionRecord{
		ID:         id,
		AuthorID:   authorID,
		Text:       text,
		StaffMsgID: staffMsgID,
	}

	if err := s.persist(guildID); err != nil {
		return 0, err
	}
	return id, nil
}

// Approve removes a pending suggestion and returns the removed record for
// downstream public posting and author notification. Removal and persist
// complete before the caller attempts either, so a crash during notification
// cannot resurrect the entry on restart.
func (s *Store) Approve(guildID string, id int64) (*models.SuggestionRecord, error) {
	return s.decide(guildID, id)
}

// Deny removes a pending suggestion and returns the removed record, used
// only to notify the author. Same contract as Approve.
func (s *Store) Deny(guildID string, id int64) (*models.SuggestionRecord, error) {
	return s.decide(guildID, id)
}

// decide implements the terminal Pending -> decided transition. No file
// write happens when the id is not found.
func (s *Store) decide(guildID string, id int64) (*models.SuggestionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil, ErrNotFound
	}
	key := strconv.FormatInt(id, 10)
	rec, ok := g.Pending[key]
	if !ok {
		return nil, ErrNotFound
	}
	delete(g.Pending, key)

	if err := s.persist(guildID); err != nil {
		return nil, err
	}
	out := *rec
	return &out, nil
}

// ListPending returns copies of all pending records for a guild in
// ascending id order. Never mutates state; display caps are the caller's
// concern.
func (s *Store) ListPending(guildID string) []models.SuggestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil
	}
	out := make([]models.SuggestionRecord, 0, len(g.Pending))
	for _, rec := range g.Pending {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetChannel sets one of the channel roles for a guild, creating its config
// if needed. Re-setting a role overwrites the previous value without error.
func (s *Store) SetChannel(guildID, role, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGuild(guildID)
	switch role {
	case RoleStaff:
		g.Channels.Staff = channelID
	case RolePublic:
		g.Channels.Public = channelID
	case RoleSuggestions:
		g.Channels.Suggestions = channelID
	default:
		return ErrUnknownRole
	}
	return s.persist(guildID)
}

// Channels returns a copy of the guild's channel configuration.
func (s *Store) Channels(guildID string) models.GuildChannels {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.guilds[guildID]; ok {
		return g.Channels
	}
	return models.GuildChannels{}
}

// BlockAuthor adds a user to the guild's blocklist. Idempotent.
func (s *Store) BlockAuthor(guildID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.ensureGuild(guildID)
	for _, b := range g.Blocked {
		if b == userID {
			return nil
		}
	}
	g.Blocked = append(g.Blocked, userID)
	return s.persist(guildID)
}

// UnblockAuthor removes a user from the guild's blocklist. Removing an
// absent entry is not an error.
func (s *Store) UnblockAuthor(guildID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil
	}
	for i, b := range g.Blocked {
		if b == userID {
			g.Blocked = append(g.Blocked[:i], g.Blocked[i+1:]...)
			return s.persist(guildID)
		}
	}
	return nil
}

// IsBlocked reports whether a user is blocked from submitting in a guild.
func (s *Store) IsBlocked(guildID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return false
	}
	for _, b := range g.Blocked {
		if b == userID {
			return true
		}
	}
	return false
}

// Ping reports backend round-trip latency when the writer supports it
// (the mongo writer does; the file writer has nothing to ping).
func (s *Store) Ping() (time.Duration, error) {
	if p, ok := s.writer.(interface{ Ping() (time.Duration, error) }); ok {
		return p.Ping()
	}
	return 0, nil
}

// Stats returns the number of known guilds and total pending suggestions.
func (s *Store) Stats() (guilds int, pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.guilds {
		pending += len(g.Pending)
	}
	return len(s.guilds), pending
}
