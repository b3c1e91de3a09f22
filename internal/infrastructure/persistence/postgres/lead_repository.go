package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

// bumpUpdatedAt garante updated_at estritamente crescente por registro
const bumpUpdatedAt = "GREATEST(?::timestamptz, updated_at + interval '1 microsecond')"

// LeadRepository implementa repositories.LeadRepository
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository cria um novo LeadRepository
func NewLeadRepository(db *gorm.DB) repositories.LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) GetLeads(ctx context.Context) ([]*entities.Lead, error) {
	var models []*LeadModel

	if err := getDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	leads := make([]*entities.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, leadToEntity(m))
	}
	return leads, nil
}

func (r *LeadRepository) GetLead(ctx context.Context, id int64) (*entities.Lead, error) {
	var model LeadModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return leadToEntity(&model), nil
}

func (r *LeadRepository) CreateLead(ctx context.Context, data entities.NewLead) (*entities.Lead, error) {
	db := getDB(ctx, r.db)
	model := leadToModel(data.Build(0, db.NowFunc()))

	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	return leadToEntity(model), nil
}

func (r *LeadRepository) UpdateLead(ctx context.Context, id int64, patch entities.LeadPatch) (*entities.Lead, error) {
	db := getDB(ctx, r.db)

	columns := leadPatchColumns(patch)
	columns["updated_at"] = gorm.Expr(bumpUpdatedAt, db.NowFunc())

	var model LeadModel
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

	return leadToEntity(&model), nil
}

func (r *LeadRepository) DeleteLead(ctx context.Context, id int64) (bool, error) {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&LeadModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// leadPatchColumns converte o patch nas colunas efetivamente enviadas
func leadPatchColumns(p entities.LeadPatch) map[string]any {
	columns := map[string]any{}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Email != nil {
		columns["email"] = *p.Email
	}
	if p.Phone.Set {
		columns["phone"] = p.Phone.Value
	}
	if p.Source != nil {
		columns["source"] = *p.Source
	}
	if p.Status != nil {
		columns["status"] = *p.Status
	}
	if p.Score != nil {
		columns["score"] = *p.Score
	}
	if p.Tags != nil {
		columns["tags"] = pq.StringArray(append([]string{}, (*p.Tags)...))
	}
	return columns
}

// Conversores
func leadToModel(lead *entities.Lead) *LeadModel {
	return &LeadModel{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Status:    lead.Status,
		Score:     lead.Score,
		Tags:      pq.StringArray(lead.Tags),
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

func leadToEntity(model *LeadModel) *entities.Lead {
	tags := []string(model.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entities.Lead{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		Source:    model.Source,
		Status:    model.Status,
		Score:     model.Score,
		Tags:      tags,
		CreatedAt: model.CreatedAt.UTC(),
		UpdatedAt: model.UpdatedAt.UTC(),
	}
}
