package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) UpsertUser(ctx context.Context, data entities.UpsertUser) (*entities.User, error) {
	db := getDB(ctx, r.db)
	now := db.NowFunc()

	model := &UserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Conflito no ID sobrescreve os dados de perfil; created_at é preservado
	err := db.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"email":             gorm.Expr("excluded.email"),
				"first_name":        gorm.Expr("excluded.first_name"),
				"last_name":         gorm.Expr("excluded.last_name"),
				"profile_image_url": gorm.Expr("excluded.profile_image_url"),
				"updated_at":        gorm.Expr("GREATEST(excluded.updated_at, users.updated_at + interval '1 microsecond')"),
			}),
		},
		clause.Returning{},
	).Create(model).Error
	if err != nil {
		return nil, err
	}

	return userToEntity(model), nil
}

func userToEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:              model.ID,
		Email:           model.Email,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		ProfileImageURL: model.ProfileImageURL,
		CreatedAt:       model.CreatedAt.UTC(),
		UpdatedAt:       model.UpdatedAt.UTC(),
	}
}
