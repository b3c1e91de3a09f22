package repositories

import (
	"context"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
)

// LeadRepository define a persistência de leads.
// Métodos de busca e atualização retornam (nil, nil) quando o ID não existe.
type LeadRepository interface {
	GetLeads(ctx context.Context) ([]*entities.Lead, error)
	GetLead(ctx context.Context, id int64) (*entities.Lead, error)
	CreateLead(ctx context.Context, lead entities.NewLead) (*entities.Lead, error)
	UpdateLead(ctx context.Context, id int64, patch entities.LeadPatch) (*entities.Lead, error)
	DeleteLead(ctx context.Context, id int64) (bool, error)
}

// LeadMagnetRepository define a persistência de lead magnets (mesma semântica de LeadRepository)
type LeadMagnetRepository interface {
	GetLeadMagnets(ctx context.Context) ([]*entities.LeadMagnet, error)
	GetLeadMagnet(ctx context.Context, id int64) (*entities.LeadMagnet, error)
	CreateLeadMagnet(ctx context.Context, magnet entities.NewLeadMagnet) (*entities.LeadMagnet, error)
	UpdateLeadMagnet(ctx context.Context, id int64, patch entities.LeadMagnetPatch) (*entities.LeadMagnet, error)
	DeleteLeadMagnet(ctx context.Context, id int64) (bool, error)
}

// Storage é o contrato completo implementado pelos backends em memória e PostgreSQL
type Storage interface {
	UserRepository
	LeadRepository
	LeadMagnetRepository
}
