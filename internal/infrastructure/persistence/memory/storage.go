package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/clock"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/seed"
)

// Storage implementa repositories.Storage em mapas na memória.
// Usado para desenvolvimento e testes; os dados não sobrevivem ao processo.
type Storage struct {
	mu           sync.RWMutex
	clock        ports.Clock
	users        map[string]*entities.User
	leads        map[int64]*entities.Lead
	leadMagnets  map[int64]*entities.LeadMagnet
	nextLeadID   int64
	nextMagnetID int64
	seeded       bool
}

// Option configura o Storage
type Option func(*Storage)

// WithClock substitui o relógio do sistema
func WithClock(c ports.Clock) Option {
	return func(s *Storage) { s.clock = c }
}

// WithoutSampleData cria o storage vazio
func WithoutSampleData() Option {
	return func(s *Storage) { s.seeded = false }
}

// NewStorage cria um Storage em memória já populado com os dados de demonstração
func NewStorage(opts ...Option) repositories.Storage {
	return newStorage(opts...)
}

func newStorage(opts ...Option) *Storage {
	s := &Storage{
		clock:        clock.System{},
		users:        make(map[string]*entities.User),
		leads:        make(map[int64]*entities.Lead),
		leadMagnets:  make(map[int64]*entities.LeadMagnet),
		nextLeadID:   1,
		nextMagnetID: 1,
		seeded:       true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seeded {
		// Nunca falha: o backend em memória não retorna erros
		_ = seed.Apply(context.Background(), s)
	}

	return s
}

func (s *Storage) GetUser(_ context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	c := *user
	return &c, nil
}

func (s *Storage) UpsertUser(_ context.Context, data entities.UpsertUser) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	user, ok := s.users[data.ID]
	if !ok {
		user = &entities.User{ID: data.ID, CreatedAt: now, UpdatedAt: now}
	} else {
		user.UpdatedAt = clock.After(user.UpdatedAt, now)
	}
	user.Email = data.Email
	user.FirstName = data.FirstName
	user.LastName = data.LastName
	user.ProfileImageURL = data.ProfileImageURL
	s.users[data.ID] = user

	c := *user
	return &c, nil
}

func (s *Storage) GetLeads(_ context.Context) ([]*entities.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leads := make([]*entities.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		leads = append(leads, l.Clone())
	}
	sort.Slice(leads, func(i, j int) bool {
		return newerFirst(leads[i].CreatedAt.UnixNano(), leads[i].ID, leads[j].CreatedAt.UnixNano(), leads[j].ID)
	})
	return leads, nil
}

func (s *Storage) GetLead(_ context.Context, id int64) (*entities.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, nil
	}
	return lead.Clone(), nil
}

func (s *Storage) CreateLead(_ context.Context, data entities.NewLead) (*entities.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextLeadID
	s.nextLeadID++

	lead := data.Build(id, s.clock.Now())
	s.leads[id] = lead
	return lead.Clone(), nil
}

func (s *Storage) UpdateLead(_ context.Context, id int64, patch entities.LeadPatch) (*entities.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(lead)
	lead.UpdatedAt = clock.After(lead.UpdatedAt, s.clock.Now())
	return lead.Clone(), nil
}

func (s *Storage) DeleteLead(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leads[id]; !ok {
		return false, nil
	}
	delete(s.leads, id)
	return true, nil
}

func (s *Storage) GetLeadMagnets(_ context.Context) ([]*entities.LeadMagnet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	magnets := make([]*entities.LeadMagnet, 0, len(s.leadMagnets))
	for _, m := range s.leadMagnets {
		magnets = append(magnets, m.Clone())
	}
	sort.Slice(magnets, func(i, j int) bool {
		return newerFirst(magnets[i].CreatedAt.UnixNano(), magnets[i].ID, magnets[j].CreatedAt.UnixNano(), magnets[j].ID)
	})
	return magnets, nil
}

func (s *Storage) GetLeadMagnet(_ context.Context, id int64) (*entities.LeadMagnet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	magnet, ok := s.leadMagnets[id]
	if !ok {
		return nil, nil
	}
	return magnet.Clone(), nil
}

func (s *Storage) CreateLeadMagnet(_ context.Context, data entities.NewLeadMagnet) (*entities.LeadMagnet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMagnetID
	s.nextMagnetID++

	magnet := data.Build(id, s.clock.Now())
	s.leadMagnets[id] = magnet
	return magnet.Clone(), nil
}

func (s *Storage) UpdateLeadMagnet(_ context.Context, id int64, patch entities.LeadMagnetPatch) (*entities.LeadMagnet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	magnet, ok := s.leadMagnets[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(magnet)
	magnet.UpdatedAt = clock.After(magnet.UpdatedAt, s.clock.Now())
	return magnet.Clone(), nil
}

func (s *Storage) DeleteLeadMagnet(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leadMagnets[id]; !ok {
		return false, nil
	}
	delete(s.leadMagnets, id)
	return true, nil
}

// newerFirst ordena por criação decrescente; empate desfeito pelo maior ID
func newerFirst(createdA, idA, createdB, idB int64) bool {
	if createdA != createdB {
		return createdA > createdB
	}
	return idA > idB
}
