package services

import (
	"context"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/domain/valueobjects"
)

// LeadService contém a lógica de negócio para leads
type LeadService struct {
	repo   repositories.LeadRepository
	logger ports.Logger
}

// NewLeadService cria um novo LeadService
func NewLeadService(repo repositories.LeadRepository, logger ports.Logger) *LeadService {
	return &LeadService{
		repo:   repo,
		logger: logger,
	}
}

// ListLeads lista todos os leads, mais recentes primeiro
func (s *LeadService) ListLeads(ctx context.Context) ([]*entities.Lead, error) {
	return s.repo.GetLeads(ctx)
}

// GetLead busca um lead por ID
func (s *LeadService) GetLead(ctx context.Context, id int64) (*entities.Lead, error) {
	lead, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.ErrLeadNotFound
	}
	return lead, nil
}

// CreateLead cria um novo lead
func (s *LeadService) CreateLead(ctx context.Context, input entities.NewLead) (*entities.Lead, error) {
	input = input.WithDefaults()
	if !valueobjects.LeadStatus(input.Status).IsKnown() {
		s.logger.Debug("lead with non-standard status", "status", input.Status)
	}

	lead, err := s.repo.CreateLead(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead created", "lead_id", lead.ID, "source", lead.Source)
	return lead, nil
}

// UpdateLead aplica uma atualização parcial
func (s *LeadService) UpdateLead(ctx context.Context, id int64, patch entities.LeadPatch) (*entities.Lead, error) {
	lead, err := s.repo.UpdateLead(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.ErrLeadNotFound
	}

	s.logger.Info("lead updated", "lead_id", lead.ID, "touch_only", patch.IsEmpty())
	return lead, nil
}

// DeleteLead remove um lead; ErrLeadNotFound quando nada foi removido
func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteLead(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrLeadNotFound
	}

	s.logger.Info("lead deleted", "lead_id", id)
	return nil
}
