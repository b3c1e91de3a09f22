package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

// LeadMagnetRepository implementa repositories.LeadMagnetRepository
type LeadMagnetRepository struct {
	db *gorm.DB
}

// NewLeadMagnetRepository cria um novo LeadMagnetRepository
func NewLeadMagnetRepository(db *gorm.DB) repositories.LeadMagnetRepository {
	return &LeadMagnetRepository{db: db}
}

func (r *LeadMagnetRepository) GetLeadMagnets(ctx context.Context) ([]*entities.LeadMagnet, error) {
	var models []*LeadMagnetModel

	if err := getDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	magnets := make([]*entities.LeadMagnet, 0, len(models))
	for _, m := range models {
		magnets = append(magnets, magnetToEntity(m))
	}
	return magnets, nil
}

func (r *LeadMagnetRepository) GetLeadMagnet(ctx context.Context, id int64) (*entities.LeadMagnet, error) {
	var model LeadMagnetModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return magnetToEntity(&model), nil
}

func (r *LeadMagnetRepository) CreateLeadMagnet(ctx context.Context, data entities.NewLeadMagnet) (*entities.LeadMagnet, error) {
	db := getDB(ctx, r.db)
	model := magnetToModel(data.Build(0, db.NowFunc()))

	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	return magnetToEntity(model), nil
}

func (r *LeadMagnetRepository) UpdateLeadMagnet(ctx context.Context, id int64, patch entities.LeadMagnetPatch) (*entities.LeadMagnet, error) {
	db := getDB(ctx, r.db)

	columns := magnetPatchColumns(patch)
	columns["updated_at"] = gorm.Expr(bumpUpdatedAt, db.NowFunc())

	var model LeadMagnetModel
	result := db.Model(&model).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return magnetToEntity(&model), nil
}

func (r *LeadMagnetRepository) DeleteLeadMagnet(ctx context.Context, id int64) (bool, error) {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&LeadMagnetModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func magnetPatchColumns(p entities.LeadMagnetPatch) map[string]any {
	columns := map[string]any{}
	if p.Title != nil {
		columns["title"] = *p.Title
	}
	if p.Type != nil {
		columns["type"] = *p.Type
	}
	if p.Industry != nil {
		columns["industry"] = *p.Industry
	}
	if p.Description.Set {
		columns["description"] = p.Description.Value
	}
	if p.Status != nil {
		columns["status"] = *p.Status
	}
	if p.Leads != nil {
		columns["leads"] = *p.Leads
	}
	if p.Conversion != nil {
		columns["conversion"] = *p.Conversion
	}
	return columns
}

// Conversores
func magnetToModel(m *entities.LeadMagnet) *LeadMagnetModel {
	return &LeadMagnetModel{
		ID:          m.ID,
		Title:       m.Title,
		Type:        m.Type,
		Industry:    m.Industry,
		Description: m.Description,
		Status:      m.Status,
		Leads:       m.Leads,
		Conversion:  m.Conversion,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func magnetToEntity(model *LeadMagnetModel) *entities.LeadMagnet {
	return &entities.LeadMagnet{
		ID:          model.ID,
		Title:       model.Title,
		Type:        model.Type,
		Industry:    model.Industry,
		Description: model.Description,
		Status:      model.Status,
		Leads:       model.Leads,
		Conversion:  model.Conversion,
		CreatedAt:   model.CreatedAt.UTC(),
		UpdatedAt:   model.UpdatedAt.UTC(),
	}
}
