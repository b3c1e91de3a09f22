package services_test

import (
	"context"
	"errors"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
)

var errStorageDown = errors.New("connection refused")

// failingStorage simula um backend indisponível
type failingStorage struct{}

func (failingStorage) GetUser(context.Context, string) (*entities.User, error) {
	return nil, errStorageDown
}

func (failingStorage) UpsertUser(context.Context, entities.UpsertUser) (*entities.User, error) {
	return nil, errStorageDown
}

func (failingStorage) GetLeads(context.Context) ([]*entities.Lead, error) {
	return nil, errStorageDown
}

func (failingStorage) GetLead(context.Context, int64) (*entities.Lead, error) {
	return nil, errStorageDown
}

func (failingStorage) CreateLead(context.Context, entities.NewLead) (*entities.Lead, error) {
	return nil, errStorageDown
}

func (failingStorage) UpdateLead(context.Context, int64, entities.LeadPatch) (*entities.Lead, error) {
	return nil, errStorageDown
}

func (failingStorage) DeleteLead(context.Context, int64) (bool, error) {
	return false, errStorageDown
}

func (failingStorage) GetLeadMagnets(context.Context) ([]*entities.LeadMagnet, error) {
	return nil, errStorageDown
}

func (failingStorage) GetLeadMagnet(context.Context, int64) (*entities.LeadMagnet, error) {
	return nil, errStorageDown
}

func (failingStorage) CreateLeadMagnet(context.Context, entities.NewLeadMagnet) (*entities.LeadMagnet, error) {
	return nil, errStorageDown
}

func (failingStorage) UpdateLeadMagnet(context.Context, int64, entities.LeadMagnetPatch) (*entities.LeadMagnet, error) {
	return nil, errStorageDown
}

func (failingStorage) DeleteLeadMagnet(context.Context, int64) (bool, error) {
	return false, errStorageDown
}
