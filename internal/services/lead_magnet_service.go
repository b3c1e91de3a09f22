package services

import (
	"context"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

// LeadMagnetService contém a lógica de negócio para lead magnets.
// Os contadores leads/conversion são editados manualmente; criar um lead não os altera.
type LeadMagnetService struct {
	repo   repositories.LeadMagnetRepository
	logger ports.Logger
}

// NewLeadMagnetService cria um novo LeadMagnetService
func NewLeadMagnetService(repo repositories.LeadMagnetRepository, logger ports.Logger) *LeadMagnetService {
	return &LeadMagnetService{
		repo:   repo,
		logger: logger,
	}
}

func (s *LeadMagnetService) ListLeadMagnets(ctx context.Context) ([]*entities.LeadMagnet, error) {
	return s.repo.GetLeadMagnets(ctx)
}

func (s *LeadMagnetService) GetLeadMagnet(ctx context.Context, id int64) (*entities.LeadMagnet, error) {
	magnet, err := s.repo.GetLeadMagnet(ctx, id)
	if err != nil {
		return nil, err
	}
	if magnet == nil {
		return nil, errors.ErrLeadMagnetNotFound
	}
	return magnet, nil
}

func (s *LeadMagnetService) CreateLeadMagnet(ctx context.Context, input entities.NewLeadMagnet) (*entities.LeadMagnet, error) {
	magnet, err := s.repo.CreateLeadMagnet(ctx, input.WithDefaults())
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead magnet created", "lead_magnet_id", magnet.ID, "type", magnet.Type)
	return magnet, nil
}

func (s *LeadMagnetService) UpdateLeadMagnet(ctx context.Context, id int64, patch entities.LeadMagnetPatch) (*entities.LeadMagnet, error) {
	magnet, err := s.repo.UpdateLeadMagnet(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if magnet == nil {
		return nil, errors.ErrLeadMagnetNotFound
	}

	s.logger.Info("lead magnet updated", "lead_magnet_id", magnet.ID, "touch_only", patch.IsEmpty())
	return magnet, nil
}

func (s *LeadMagnetService) DeleteLeadMagnet(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteLeadMagnet(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrLeadMagnetNotFound
	}

	s.logger.Info("lead magnet deleted", "lead_magnet_id", id)
	return nil
}
