package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/seed"
)

// Storage compõe os repositórios PostgreSQL em um repositories.Storage
type Storage struct {
	repositories.UserRepository
	repositories.LeadRepository
	repositories.LeadMagnetRepository
}

// NewStorage cria o backend persistente
func NewStorage(db *gorm.DB) repositories.Storage {
	return &Storage{
		UserRepository:       NewUserRepository(db),
		LeadRepository:       NewLeadRepository(db),
		LeadMagnetRepository: NewLeadMagnetRepository(db),
	}
}

// SeedIfEmpty grava os dados de demonstração em uma única transação
// quando as tabelas de leads e lead magnets estão vazias
func SeedIfEmpty(ctx context.Context, db *gorm.DB, storage repositories.Storage, uow ports.UnitOfWork, log ports.Logger) error {
	return uow.WithTransaction(ctx, func(txCtx context.Context) error {
		tx := getDB(txCtx, db)

		var leads, magnets int64
		if err := tx.Model(&LeadModel{}).Count(&leads).Error; err != nil {
			return fmt.Errorf("count leads: %w", err)
		}
		if err := tx.Model(&LeadMagnetModel{}).Count(&magnets).Error; err != nil {
			return fmt.Errorf("count lead magnets: %w", err)
		}
		if leads > 0 || magnets > 0 {
			log.Debug("skipping sample data, tables not empty", "leads", leads, "lead_magnets", magnets)
			return nil
		}

		if err := seed.Apply(txCtx, storage); err != nil {
			return err
		}
		log.Info("sample data seeded")
		return nil
	})
}
