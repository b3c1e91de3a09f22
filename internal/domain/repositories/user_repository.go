package repositories

import (
	"context"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
)

// UserRepository define a persistência de usuários exigida pelo provedor de autenticação
type UserRepository interface {
	// GetUser retorna (nil, nil) quando o usuário não existe
	GetUser(ctx context.Context, id string) (*entities.User, error)
	// UpsertUser insere ou sobrescreve pelo ID; UpdatedAt é sempre renovado
	UpsertUser(ctx context.Context, user entities.UpsertUser) (*entities.User, error)
}
