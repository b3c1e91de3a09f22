package services

import (
	"context"
	"strings"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpsertUser grava ou atualiza o perfil do usuário
func (s *UserService) UpsertUser(ctx context.Context, data entities.UpsertUser) (*entities.User, error) {
	if strings.TrimSpace(data.ID) == "" {
		return nil, errors.ErrUnauthorized
	}

	user, err := s.userRepo.UpsertUser(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user upserted", "user_id", user.ID)
	return user, nil
}

// SyncFromClaims grava o usuário a partir das claims do ID token (login OIDC)
func (s *UserService) SyncFromClaims(ctx context.Context, claims map[string]any) (*entities.User, error) {
	sub, _ := claims["sub"].(string)

	return s.UpsertUser(ctx, entities.UpsertUser{
		ID:              sub,
		Email:           stringClaim(claims, "email"),
		FirstName:       stringClaim(claims, "first_name", "given_name"),
		LastName:        stringClaim(claims, "last_name", "family_name"),
		ProfileImageURL: stringClaim(claims, "profile_image_url", "picture"),
	})
}

// stringClaim retorna a primeira claim não vazia entre as chaves informadas
func stringClaim(claims map[string]any, keys ...string) *string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return &v
		}
	}
	return nil
}
